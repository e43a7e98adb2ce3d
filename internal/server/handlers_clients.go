package server

import (
	"encoding/json"
	"net/http"

	"github.com/talenthive/resume-screener/internal/types"
)

// handleListClients returns the caller's company client names.
func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := user.requireCompany(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	names, err := s.db.ListClientNames(r.Context(), user.CompanyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch clients: "+err.Error())
		return
	}
	if names == nil {
		names = []string{}
	}
	s.jsonResponse(w, http.StatusOK, names)
}

// handleListJDs returns the JD titles stored under a client.
func (s *Server) handleListJDs(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := user.requireCompany(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	titles, err := s.db.ListJDTitles(r.Context(), r.PathValue("client_name"), user.CompanyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch job descriptions: "+err.Error())
		return
	}
	if titles == nil {
		titles = []string{}
	}
	s.jsonResponse(w, http.StatusOK, titles)
}

// handleGetJD returns a stored job description's requirements.
func (s *Server) handleGetJD(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := user.requireCompany(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jd, err := s.db.GetJobDescription(r.Context(), r.PathValue("client_name"), r.PathValue("jd_title"), user.CompanyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch job description: "+err.Error())
		return
	}
	if jd == nil {
		nf := &ErrNotFound{Resource: "JD"}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.JDDetails{
		JobDescription:     jd.JDTitle,
		RequiredExperience: jd.RequiredExperience,
		PrimarySkills:      jd.PrimarySkills,
		SecondarySkills:    jd.SecondarySkills,
	})
}

// handleUpdateJD replaces a stored job description's requirements.
func (s *Server) handleUpdateJD(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := user.requireCompany(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.UpdateJDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := s.db.UpdateJobDescription(r.Context(),
		r.PathValue("client_name"), r.PathValue("jd_title"),
		req.RequiredExperience, req.PrimarySkills, req.SecondarySkills,
		user.CompanyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update job description: "+err.Error())
		return
	}
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Failed to update job description")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}
