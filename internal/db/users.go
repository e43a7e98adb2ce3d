package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, role, company_id, password_hash, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CompanyID, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a regular company user.
func (db *DB) CreateUser(ctx context.Context, email, name, passwordHash string, companyID uuid.UUID) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role, company_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		email, name, passwordHash, RoleUser, companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// CreateSuperAdmin inserts a platform administrator with no company.
func (db *DB) CreateSuperAdmin(ctx context.Context, email, name, passwordHash string) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		email, name, passwordHash, RoleSuperAdmin))
	if err != nil {
		return nil, fmt.Errorf("failed to create super admin: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUser retrieves a user by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UpdateUser applies the non-nil fields and returns the updated row.
// Returns nil when the user does not exist. A nil passwordHash keeps the
// current credentials.
func (db *DB) UpdateUser(ctx context.Context, id uuid.UUID, email, name, role, passwordHash *string, companyID *uuid.UUID) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`UPDATE users SET
			email = COALESCE($2, email),
			name = COALESCE($3, name),
			role = COALESCE($4, role),
			password_hash = COALESCE($5, password_hash),
			company_id = COALESCE($6, company_id)
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, email, name, role, passwordHash, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes a user account and reports whether it existed.
func (db *DB) DeleteUser(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListUsers returns non-super-admin accounts, optionally filtered by
// company.
func (db *DB) ListUsers(ctx context.Context, companyID *uuid.UUID) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role <> $1`
	args := []any{RoleSuperAdmin}
	if companyID != nil {
		query += ` AND company_id = $2`
		args = append(args, *companyID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CompanyID, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountUsers returns the number of non-super-admin accounts.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role <> $1`, RoleSuperAdmin).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
