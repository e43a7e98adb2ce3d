package db

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role values stored in the users table.
const (
	RoleSuperAdmin   = "super_admin"
	RoleCompanyAdmin = "company_admin"
	RoleUser         = "user"
)

// Company is a tenant on the platform.
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is an account. CompanyID is nil for super admins.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Client is a hiring client a company screens candidates for.
type Client struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	CompanyID  uuid.UUID `json:"company_id"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// JobDescription is a stored requirement set under a client.
type JobDescription struct {
	ID                 uuid.UUID `json:"id"`
	ClientID           uuid.UUID `json:"client_id"`
	JDTitle            string    `json:"jd_title"`
	RequiredExperience string    `json:"required_experience"`
	PrimarySkills      []string  `json:"primary_skills"`
	SecondarySkills    []string  `json:"secondary_skills"`
	CompanyID          uuid.UUID `json:"company_id"`
	CreatedBy          uuid.UUID `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
}

// AnalysisRecord is a stored screening run. ListAnalyses omits the
// uploaded file bytes; use GetAnalysisFile to retrieve them.
type AnalysisRecord struct {
	ID                     uuid.UUID       `json:"analysis_id"`
	CreatedAt              time.Time       `json:"timestamp"`
	CandidateName          string          `json:"candidate_name"`
	Filename               string          `json:"filename"`
	ClientID               uuid.UUID       `json:"client_id"`
	ClientName             string          `json:"client_name"`
	JDID                   uuid.UUID       `json:"jd_id"`
	JDTitle                string          `json:"jd_title"`
	RequiredExperience     string          `json:"required_experience"`
	PrimarySkills          []string        `json:"primary_skills"`
	SecondarySkills        []string        `json:"secondary_skills"`
	CandidateEmail         string          `json:"candidate_email"`
	FreelancerStatus       bool            `json:"freelancer_status"`
	HasLinkedIn            bool            `json:"has_linkedin"`
	LinkedInURL            string          `json:"linkedin_url"`
	HasEmail               bool            `json:"has_email"`
	MatchScore             int             `json:"match_score"`
	ExperienceMatch        bool            `json:"experience_match"`
	TotalExperience        string          `json:"total_experience"`
	MatchingSkills         []string        `json:"matching_skills"`
	MissingPrimarySkills   []string        `json:"missing_primary_skills"`
	MissingSecondarySkills []string        `json:"missing_secondary_skills"`
	Report                 json.RawMessage `json:"report,omitempty"`
	CompanyID              uuid.UUID       `json:"company_id"`
	CreatedBy              uuid.UUID       `json:"created_by"`
}

// NormalizeClientName canonicalizes client and JD names so that lookups
// are insensitive to casing and spacing. Fully uppercase words (acronyms)
// are kept as-is; every other word gets an initial capital.
func NormalizeClientName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if w == strings.ToUpper(w) && strings.ContainsFunc(w, isLetter) {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
