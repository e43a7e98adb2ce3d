package server

import (
	"encoding/json"
	"net/http"

	"github.com/talenthive/resume-screener/internal/types"
)

// handleLogin authenticates by email and password and returns the
// identity plus a signed token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil || !s.passwords.VerifyPassword(req.Password, user.PasswordHash) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = user.CompanyID.String()
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role, companyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{
		Message:   "Login successful",
		Role:      user.Role,
		Name:      user.Name,
		UserID:    user.ID.String(),
		Email:     user.Email,
		CompanyID: companyID,
		Token:     token,
	})
}
