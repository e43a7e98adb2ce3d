package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FindOrCreateClient looks up a client by normalized name within a
// company, creating it when missing.
func (db *DB) FindOrCreateClient(ctx context.Context, name string, companyID, createdBy uuid.UUID) (*Client, error) {
	normalized := NormalizeClientName(name)
	if normalized == "" {
		return nil, fmt.Errorf("client name cannot be empty")
	}

	var c Client
	err := db.pool.QueryRow(ctx,
		`SELECT id, client_name, company_id, created_by, created_at
		 FROM clients WHERE company_id = $1 AND client_name = $2`,
		companyID, normalized,
	).Scan(&c.ID, &c.ClientName, &c.CompanyID, &c.CreatedBy, &c.CreatedAt)
	if err == nil {
		return &c, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO clients (client_name, company_id, created_by)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (company_id, client_name) DO UPDATE SET client_name = EXCLUDED.client_name
		 RETURNING id, client_name, company_id, created_by, created_at`,
		normalized, companyID, createdBy,
	).Scan(&c.ID, &c.ClientName, &c.CompanyID, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &c, nil
}

// FindOrCreateJobDescription looks up a JD by normalized title under a
// client, creating it with the supplied requirements when missing. An
// existing JD keeps its stored requirements.
func (db *DB) FindOrCreateJobDescription(ctx context.Context, clientID uuid.UUID, title, requiredExperience string, primarySkills, secondarySkills []string, companyID, createdBy uuid.UUID) (*JobDescription, error) {
	normalized := NormalizeClientName(title)
	if normalized == "" {
		return nil, fmt.Errorf("job description title cannot be empty")
	}
	if primarySkills == nil {
		primarySkills = []string{}
	}
	if secondarySkills == nil {
		secondarySkills = []string{}
	}

	var jd JobDescription
	err := db.pool.QueryRow(ctx,
		`SELECT id, client_id, jd_title, required_experience, primary_skills, secondary_skills, company_id, created_by, created_at
		 FROM job_descriptions WHERE client_id = $1 AND jd_title = $2 AND company_id = $3`,
		clientID, normalized, companyID,
	).Scan(&jd.ID, &jd.ClientID, &jd.JDTitle, &jd.RequiredExperience, &jd.PrimarySkills, &jd.SecondarySkills, &jd.CompanyID, &jd.CreatedBy, &jd.CreatedAt)
	if err == nil {
		return &jd, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions (client_id, jd_title, required_experience, primary_skills, secondary_skills, company_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (client_id, jd_title) DO UPDATE SET jd_title = EXCLUDED.jd_title
		 RETURNING id, client_id, jd_title, required_experience, primary_skills, secondary_skills, company_id, created_by, created_at`,
		clientID, normalized, requiredExperience, primarySkills, secondarySkills, companyID, createdBy,
	).Scan(&jd.ID, &jd.ClientID, &jd.JDTitle, &jd.RequiredExperience, &jd.PrimarySkills, &jd.SecondarySkills, &jd.CompanyID, &jd.CreatedBy, &jd.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job description: %w", err)
	}
	return &jd, nil
}

// ListClientNames returns the distinct client names of a company, sorted.
func (db *DB) ListClientNames(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT DISTINCT client_name FROM clients WHERE company_id = $1 ORDER BY client_name`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan client name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListJDTitles returns the JD titles stored under a client, sorted.
// Returns nil without error when the client is unknown.
func (db *DB) ListJDTitles(ctx context.Context, clientName string, companyID uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT jd.jd_title
		 FROM job_descriptions jd
		 JOIN clients c ON c.id = jd.client_id
		 WHERE c.client_name = $1 AND c.company_id = $2
		 ORDER BY jd.jd_title`,
		NormalizeClientName(clientName), companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan jd title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// GetJobDescription retrieves a JD by client name and title. Returns nil
// when either is unknown.
func (db *DB) GetJobDescription(ctx context.Context, clientName, jdTitle string, companyID uuid.UUID) (*JobDescription, error) {
	var jd JobDescription
	err := db.pool.QueryRow(ctx,
		`SELECT jd.id, jd.client_id, jd.jd_title, jd.required_experience, jd.primary_skills, jd.secondary_skills, jd.company_id, jd.created_by, jd.created_at
		 FROM job_descriptions jd
		 JOIN clients c ON c.id = jd.client_id
		 WHERE c.client_name = $1 AND c.company_id = $2 AND jd.jd_title = $3`,
		NormalizeClientName(clientName), companyID, NormalizeClientName(jdTitle),
	).Scan(&jd.ID, &jd.ClientID, &jd.JDTitle, &jd.RequiredExperience, &jd.PrimarySkills, &jd.SecondarySkills, &jd.CompanyID, &jd.CreatedBy, &jd.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}
	return &jd, nil
}

// UpdateJobDescription replaces the requirements of a stored JD. Returns
// false when the client or JD is unknown.
func (db *DB) UpdateJobDescription(ctx context.Context, clientName, jdTitle, requiredExperience string, primarySkills, secondarySkills []string, companyID uuid.UUID) (bool, error) {
	if primarySkills == nil {
		primarySkills = []string{}
	}
	if secondarySkills == nil {
		secondarySkills = []string{}
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE job_descriptions jd
		 SET required_experience = $4, primary_skills = $5, secondary_skills = $6
		 FROM clients c
		 WHERE c.id = jd.client_id AND c.client_name = $1 AND c.company_id = $2 AND jd.jd_title = $3`,
		NormalizeClientName(clientName), companyID, NormalizeClientName(jdTitle),
		requiredExperience, primarySkills, secondarySkills)
	if err != nil {
		return false, fmt.Errorf("failed to update job description: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
