package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/talenthive/resume-screener/internal/db"
	"github.com/talenthive/resume-screener/internal/types"
)

// handleCreateUser creates a regular company user. Super admin only; the
// requested role is ignored and always stored as "user".
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	if err := requireSuperAdmin(r); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := s.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing != nil {
		dup := &ErrEmailAlreadyExists{Email: req.Email}
		s.errorResponse(w, HTTPStatus(dup), dup.Error())
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID format")
		return
	}
	company, err := s.db.GetCompany(r.Context(), companyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if company == nil {
		nf := &ErrNotFound{Resource: "company"}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := s.db.CreateUser(r.Context(), req.Email, req.Name, hash, companyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, user)
}

// handleListUsers returns company users, optionally filtered by the
// company_id query parameter.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var companyID *uuid.UUID
	if v := r.URL.Query().Get("company_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid company ID format")
			return
		}
		companyID = &id
	}

	users, err := s.db.ListUsers(r.Context(), companyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if users == nil {
		users = []db.User{}
	}
	s.jsonResponse(w, http.StatusOK, users)
}

// handleUpdateUser applies a partial user update. Super admin only.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	if err := requireSuperAdmin(r); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var req types.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := s.passwords.HashPassword(*req.Password)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		passwordHash = &hash
	}

	var companyID *uuid.UUID
	if req.CompanyID != nil {
		cid, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid company ID format")
			return
		}
		companyID = &cid
	}

	user, err := s.db.UpdateUser(r.Context(), id, req.Email, req.Name, req.Role, passwordHash, companyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		nf := &ErrNotFound{Resource: "user"}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}

// handleDeleteUser removes a user. Super admin only.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := requireSuperAdmin(r); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	found, err := s.db.DeleteUser(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete user: "+err.Error())
		return
	}
	if !found {
		nf := &ErrNotFound{Resource: "user"}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// handleDashboard returns platform-wide counts.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	companies, err := s.db.CountCompanies(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	users, err := s.db.CountUsers(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.DashboardData{
		CompaniesCount: companies,
		UsersCount:     users,
	})
}
