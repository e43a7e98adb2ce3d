package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/talenthive/resume-screener/internal/db"
)

// handleHistory returns the screening history visible to the caller.
// Company admins see every run in their company; regular users only
// their own.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := user.requireCompany(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var createdBy *uuid.UUID
	switch user.Role {
	case db.RoleCompanyAdmin:
		// company-wide view
	case db.RoleUser:
		createdBy = &user.UserID
	default:
		s.jsonResponse(w, http.StatusOK, []db.AnalysisRecord{})
		return
	}

	records, err := s.db.ListAnalyses(r.Context(), user.CompanyID, createdBy)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch history: "+err.Error())
		return
	}
	if records == nil {
		records = []db.AnalysisRecord{}
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleDownload streams the originally uploaded resume of a screening
// run. Non-admin users may only download their own uploads.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := user.requireCompany(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("analysis_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	filename, content, createdBy, err := s.db.GetAnalysisFile(r.Context(), id, user.CompanyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to download file: "+err.Error())
		return
	}
	if filename == "" {
		nf := &ErrNotFound{Resource: "analysis"}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	if user.Role != db.RoleCompanyAdmin && createdBy != user.UserID {
		fb := &ErrForbidden{Reason: "not authorized to access this resource"}
		s.errorResponse(w, HTTPStatus(fb), fb.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		return
	}
}
