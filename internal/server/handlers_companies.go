package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/talenthive/resume-screener/internal/db"
	"github.com/talenthive/resume-screener/internal/types"
)

// handleCreateCompany registers a company together with its first admin
// account. Super admin only.
func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	if err := requireSuperAdmin(r); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.CompanyCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := s.db.GetUserByEmail(r.Context(), req.AdminEmail)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing != nil {
		dup := &ErrEmailAlreadyExists{Email: req.AdminEmail}
		s.errorResponse(w, HTTPStatus(dup), dup.Error())
		return
	}

	hash, err := s.passwords.HashPassword(req.AdminPassword)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	company, _, err := s.db.CreateCompanyWithAdmin(r.Context(),
		req.Name, req.Description, req.Address,
		req.AdminEmail, req.Name+" Admin", hash)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create company: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, company)
}

// handleListCompanies returns all companies.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.db.ListCompanies(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if companies == nil {
		companies = []db.Company{}
	}
	s.jsonResponse(w, http.StatusOK, companies)
}

// handleUpdateCompany applies a partial update. Super admin only.
func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	if err := requireSuperAdmin(r); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("company_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID format")
		return
	}

	var req types.CompanyUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	company, err := s.db.UpdateCompany(r.Context(), id, req.Name, req.Description, req.Address)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if company == nil {
		nf := &ErrNotFound{Resource: "company"}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, company)
}

// handleDeleteCompany removes a company without users. Super admin only.
func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := requireSuperAdmin(r); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("company_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID format")
		return
	}

	found, err := s.db.DeleteCompany(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !found {
		nf := &ErrNotFound{Resource: "company"}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Company deleted"})
}
