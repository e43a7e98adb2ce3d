package db

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('super_admin', 'company_admin', 'user')),
		company_id UUID REFERENCES companies(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_name TEXT NOT NULL,
		company_id UUID NOT NULL REFERENCES companies(id),
		created_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (company_id, client_name)
	)`,

	`CREATE TABLE IF NOT EXISTS job_descriptions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id),
		jd_title TEXT NOT NULL,
		required_experience TEXT NOT NULL DEFAULT '',
		primary_skills TEXT[] NOT NULL DEFAULT '{}',
		secondary_skills TEXT[] NOT NULL DEFAULT '{}',
		company_id UUID NOT NULL REFERENCES companies(id),
		created_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (client_id, jd_title)
	)`,

	`CREATE TABLE IF NOT EXISTS analyses (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		candidate_name TEXT NOT NULL,
		filename TEXT NOT NULL,
		file_content BYTEA NOT NULL,
		client_id UUID NOT NULL REFERENCES clients(id),
		client_name TEXT NOT NULL,
		jd_id UUID NOT NULL REFERENCES job_descriptions(id),
		jd_title TEXT NOT NULL,
		required_experience TEXT NOT NULL DEFAULT '',
		primary_skills TEXT[] NOT NULL DEFAULT '{}',
		secondary_skills TEXT[] NOT NULL DEFAULT '{}',
		candidate_email TEXT NOT NULL DEFAULT '',
		freelancer_status BOOLEAN NOT NULL DEFAULT FALSE,
		has_linkedin BOOLEAN NOT NULL DEFAULT FALSE,
		linkedin_url TEXT NOT NULL DEFAULT '',
		has_email BOOLEAN NOT NULL DEFAULT FALSE,
		match_score INT NOT NULL DEFAULT 0,
		experience_match BOOLEAN NOT NULL DEFAULT FALSE,
		total_experience TEXT NOT NULL DEFAULT 'N/A',
		matching_skills TEXT[] NOT NULL DEFAULT '{}',
		missing_primary_skills TEXT[] NOT NULL DEFAULT '{}',
		missing_secondary_skills TEXT[] NOT NULL DEFAULT '{}',
		report JSONB NOT NULL,
		company_id UUID NOT NULL REFERENCES companies(id),
		created_by UUID NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analyses_company_created
		ON analyses (company_id, created_at DESC)`,

	`CREATE INDEX IF NOT EXISTS idx_users_company ON users (company_id)`,
}

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so repeated runs are safe.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
