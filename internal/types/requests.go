// Package types provides request and response definitions shared across the
// resume-screener API.
package types

import (
	"github.com/go-playground/validator/v10"
)

// JDData carries the job description a resume is screened against. It
// arrives as a JSON form field alongside the uploaded resume.
type JDData struct {
	ClientName         string   `json:"client_name" validate:"required,min=1"`
	JDTitle            string   `json:"jd_title" validate:"required,min=1"`
	RequiredExperience string   `json:"required_experience,omitempty"` // e.g. "3-5", "4+"
	MinExperience      int      `json:"min_experience,omitempty"`
	MaxExperience      int      `json:"max_experience,omitempty"`
	PrimarySkills      []string `json:"primary_skills,omitempty"`
	SecondarySkills    []string `json:"secondary_skills,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated identity and a signed token.
type LoginResponse struct {
	Message   string `json:"message"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id,omitempty"`
	Token     string `json:"token"`
}

// CompanyCreate represents the request to register a company together with
// its first admin account.
type CompanyCreate struct {
	Name          string `json:"name" validate:"required,min=1"`
	Description   string `json:"description"`
	Address       string `json:"address"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
}

// CompanyUpdate represents a partial company update. Nil fields are left
// unchanged.
type CompanyUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// UserCreate represents the request to create a company user. The role is
// always "user"; admins are created through company registration.
type UserCreate struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required,min=1"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// UserUpdate represents a partial user update. Nil fields are left
// unchanged.
type UserUpdate struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Name      *string `json:"name,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=company_admin user"`
	CompanyID *string `json:"company_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateJDRequest replaces the stored requirements of a job description.
type UpdateJDRequest struct {
	RequiredExperience string   `json:"required_experience" validate:"required"`
	PrimarySkills      []string `json:"primary_skills" validate:"required"`
	SecondarySkills    []string `json:"secondary_skills"`
}

// JDDetails is the catalog view of a stored job description.
type JDDetails struct {
	JobDescription     string   `json:"job_description"`
	RequiredExperience string   `json:"required_experience"`
	PrimarySkills      []string `json:"primary_skills"`
	SecondarySkills    []string `json:"secondary_skills"`
}

// DashboardData summarizes platform-wide counts for the admin dashboard.
type DashboardData struct {
	CompaniesCount int `json:"companies_count"`
	UsersCount     int `json:"users_count"`
}

var validate = validator.New()

// Validate validates the JDData using the validator.
func (d *JDData) Validate() error {
	return validate.Struct(d)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CompanyCreate using the validator.
func (r *CompanyCreate) Validate() error {
	return validate.Struct(r)
}

// Validate validates the UserCreate using the validator.
func (r *UserCreate) Validate() error {
	return validate.Struct(r)
}

// Validate validates the UserUpdate using the validator.
func (r *UserUpdate) Validate() error {
	return validate.Struct(r)
}

// Validate validates the UpdateJDRequest using the validator.
func (r *UpdateJDRequest) Validate() error {
	return validate.Struct(r)
}
