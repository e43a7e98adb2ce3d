package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertAnalysis stores a screening run, including the uploaded file and
// the full report JSON, and returns the new analysis ID.
func (db *DB) InsertAnalysis(ctx context.Context, rec *AnalysisRecord, fileContent []byte) (uuid.UUID, error) {
	report := rec.Report
	if report == nil {
		report = json.RawMessage("{}")
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (
			candidate_name, filename, file_content,
			client_id, client_name, jd_id, jd_title,
			required_experience, primary_skills, secondary_skills,
			candidate_email, freelancer_status, has_linkedin, linkedin_url, has_email,
			match_score, experience_match, total_experience,
			matching_skills, missing_primary_skills, missing_secondary_skills,
			report, company_id, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id`,
		rec.CandidateName, rec.Filename, fileContent,
		rec.ClientID, rec.ClientName, rec.JDID, rec.JDTitle,
		rec.RequiredExperience, emptyIfNil(rec.PrimarySkills), emptyIfNil(rec.SecondarySkills),
		rec.CandidateEmail, rec.FreelancerStatus, rec.HasLinkedIn, rec.LinkedInURL, rec.HasEmail,
		rec.MatchScore, rec.ExperienceMatch, rec.TotalExperience,
		emptyIfNil(rec.MatchingSkills), emptyIfNil(rec.MissingPrimarySkills), emptyIfNil(rec.MissingSecondarySkills),
		report, rec.CompanyID, rec.CreatedBy,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return id, nil
}

const analysisColumns = `id, created_at, candidate_name, filename,
	client_id, client_name, jd_id, jd_title,
	required_experience, primary_skills, secondary_skills,
	candidate_email, freelancer_status, has_linkedin, linkedin_url, has_email,
	match_score, experience_match, total_experience,
	matching_skills, missing_primary_skills, missing_secondary_skills,
	report, company_id, created_by`

// ListAnalyses returns the screening history for a company, newest
// first, excluding the stored file bytes. When createdBy is non-nil only
// that user's runs are returned.
func (db *DB) ListAnalyses(ctx context.Context, companyID uuid.UUID, createdBy *uuid.UUID) ([]AnalysisRecord, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE company_id = $1`
	args := []any{companyID}
	if createdBy != nil {
		query += ` AND created_by = $2`
		args = append(args, *createdBy)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var r AnalysisRecord
		err := rows.Scan(
			&r.ID, &r.CreatedAt, &r.CandidateName, &r.Filename,
			&r.ClientID, &r.ClientName, &r.JDID, &r.JDTitle,
			&r.RequiredExperience, &r.PrimarySkills, &r.SecondarySkills,
			&r.CandidateEmail, &r.FreelancerStatus, &r.HasLinkedIn, &r.LinkedInURL, &r.HasEmail,
			&r.MatchScore, &r.ExperienceMatch, &r.TotalExperience,
			&r.MatchingSkills, &r.MissingPrimarySkills, &r.MissingSecondarySkills,
			&r.Report, &r.CompanyID, &r.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetAnalysisFile retrieves the uploaded file of a screening run scoped
// to a company. Returns an empty filename when not found. The creator ID
// is returned so callers can enforce per-user access.
func (db *DB) GetAnalysisFile(ctx context.Context, id uuid.UUID, companyID uuid.UUID) (filename string, content []byte, createdBy uuid.UUID, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT filename, file_content, created_by FROM analyses WHERE id = $1 AND company_id = $2`,
		id, companyID,
	).Scan(&filename, &content, &createdBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil, uuid.Nil, nil
		}
		return "", nil, uuid.Nil, fmt.Errorf("failed to get analysis file: %w", err)
	}
	return filename, content, createdBy, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
