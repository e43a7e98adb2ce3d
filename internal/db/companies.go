package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `id, name, description, address, created_at`

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Address, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCompanyWithAdmin registers a company and its first admin account
// in a single transaction.
func (db *DB) CreateCompanyWithAdmin(ctx context.Context, name, description, address, adminEmail, adminName, adminPasswordHash string) (*Company, *User, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var c Company
	err = tx.QueryRow(ctx,
		`INSERT INTO companies (name, description, address)
		 VALUES ($1, $2, $3)
		 RETURNING `+companyColumns,
		name, description, address,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Address, &c.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create company: %w", err)
	}

	var u User
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role, company_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		adminEmail, adminName, adminPasswordHash, RoleCompanyAdmin, c.ID,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CompanyID, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create company admin: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit company creation: %w", err)
	}
	return &c, &u, nil
}

// GetCompany retrieves a company by its ID. Returns nil when not found.
func (db *DB) GetCompany(ctx context.Context, id uuid.UUID) (*Company, error) {
	c, err := scanCompany(db.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// ListCompanies returns all companies, newest first.
func (db *DB) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// UpdateCompany applies the non-nil fields and returns the updated row.
// Returns nil when the company does not exist.
func (db *DB) UpdateCompany(ctx context.Context, id uuid.UUID, name, description, address *string) (*Company, error) {
	c, err := scanCompany(db.pool.QueryRow(ctx,
		`UPDATE companies SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			address = COALESCE($4, address)
		 WHERE id = $1
		 RETURNING `+companyColumns,
		id, name, description, address))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return c, nil
}

// DeleteCompany removes a company and reports whether it existed. It
// refuses while user accounts still reference it so that history rows
// keep a valid owner.
func (db *DB) DeleteCompany(ctx context.Context, id uuid.UUID) (bool, error) {
	var userCount int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE company_id = $1`, id).Scan(&userCount)
	if err != nil {
		return false, fmt.Errorf("failed to count company users: %w", err)
	}
	if userCount > 0 {
		return false, fmt.Errorf("company has %d user(s); delete them first", userCount)
	}

	tag, err := db.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete company: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountCompanies returns the total number of companies.
func (db *DB) CountCompanies(ctx context.Context) (int, error) {
	var n int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return n, nil
}
