package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/talenthive/resume-screener/internal/db"
)

// identity is the caller's resolved identity for scoped endpoints.
type identity struct {
	Role      string
	UserID    uuid.UUID
	CompanyID uuid.UUID
}

// currentUser resolves the caller from the identity headers the frontend
// sends with every request. Frontends are inconsistent about header
// casing and naming, so a couple of aliases are accepted.
func currentUser(r *http.Request) (*identity, error) {
	role := firstHeader(r, "X-User-Role", "User-Role")
	userID := firstHeader(r, "X-User-Id", "X-UserId", "User-Id")
	companyID := firstHeader(r, "X-Company-Id", "Company-Id")

	if role == "" || userID == "" {
		return nil, &ErrNotAuthenticated{}
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, &ErrNotAuthenticated{}
	}

	id := &identity{Role: role, UserID: uid}
	if companyID != "" {
		cid, err := uuid.Parse(companyID)
		if err != nil {
			return nil, &ErrNotAuthenticated{}
		}
		id.CompanyID = cid
	}
	return id, nil
}

func firstHeader(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.Header.Get(name); v != "" {
			return v
		}
	}
	return ""
}

// requireSuperAdmin guards platform administration endpoints.
func requireSuperAdmin(r *http.Request) error {
	role := firstHeader(r, "X-User-Role", "User-Role")
	if role != db.RoleSuperAdmin {
		return &ErrForbidden{Reason: "super admin access required"}
	}
	return nil
}

// requireCompany ensures the caller belongs to a company; screening and
// catalog data is scoped per company.
func (id *identity) requireCompany() error {
	if id.CompanyID == uuid.Nil {
		return &ErrValidation{Message: "company ID not found in authentication"}
	}
	return nil
}
