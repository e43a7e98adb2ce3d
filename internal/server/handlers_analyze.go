package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/talenthive/resume-screener/internal/analysis"
	"github.com/talenthive/resume-screener/internal/db"
	"github.com/talenthive/resume-screener/internal/ingestion"
	"github.com/talenthive/resume-screener/internal/types"
)

const maxUploadSize = 20 << 20 // 20 MiB

// handleAnalyze accepts a multipart upload with a "resume" file and a
// "jd_data" JSON form field, screens the resume against the job
// description, stores the run, and returns the report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := user.requireCompany(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	var jd types.JDData
	if err := json.Unmarshal([]byte(r.FormValue("jd_data")), &jd); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid jd_data JSON: "+err.Error())
		return
	}
	if err := jd.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read upload: "+err.Error())
		return
	}

	// Text extraction works on a file path, so stage the upload in a
	// temp file with the original extension.
	tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(header.Filename))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to stage upload: "+err.Error())
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to stage upload: "+err.Error())
		return
	}
	tmp.Close()

	resumeText, err := ingestion.ExtractText(tmpPath)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to parse resume text: "+err.Error())
		return
	}
	if resumeText == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to parse resume text")
		return
	}

	result, err := s.analyzer.AnalyzeResume(r.Context(), resumeText, &jd)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	client, err := s.db.FindOrCreateClient(r.Context(), jd.ClientName, user.CompanyID, user.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store results: "+err.Error())
		return
	}

	jdRow, err := s.db.FindOrCreateJobDescription(r.Context(), client.ID,
		jd.JDTitle, jd.RequiredExperience, jd.PrimarySkills, jd.SecondarySkills,
		user.CompanyID, user.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store results: "+err.Error())
		return
	}

	rec, err := buildAnalysisRecord(result, client, jdRow, header.Filename, user)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store results: "+err.Error())
		return
	}

	analysisID, err := s.db.InsertAnalysis(r.Context(), rec, content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store results: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis_id": analysisID,
		"analysis":    result,
	})
}

// buildAnalysisRecord flattens a report into the history row stored
// alongside the uploaded file. The JD's stored requirements win over the
// ones submitted with this run, matching what the catalog serves.
func buildAnalysisRecord(result *analysis.Result, client *db.Client, jd *db.JobDescription, filename string, user *identity) (*db.AnalysisRecord, error) {
	report, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	rec := &db.AnalysisRecord{
		CandidateName:          "Not specified",
		Filename:               filename,
		ClientID:               client.ID,
		ClientName:             client.ClientName,
		JDID:                   jd.ID,
		JDTitle:                jd.JDTitle,
		RequiredExperience:     jd.RequiredExperience,
		PrimarySkills:          jd.PrimarySkills,
		SecondarySkills:        jd.SecondarySkills,
		MatchScore:             result.SkillAnalysis.MatchScore,
		MatchingSkills:         result.SkillAnalysis.MatchingSkills,
		MissingPrimarySkills:   result.SkillAnalysis.MissingPrimarySkills,
		MissingSecondarySkills: result.SkillAnalysis.MissingSecondarySkills,
		TotalExperience:        "N/A",
		Report:                 report,
		CompanyID:              user.CompanyID,
		CreatedBy:              user.UserID,
	}

	if result.CandidateInfo != nil {
		rec.CandidateName = result.CandidateInfo.CandidateName
	}
	if result.Experience != nil {
		rec.ExperienceMatch = result.Experience.ExperienceMatch
		if result.Experience.TotalExperience != "" {
			rec.TotalExperience = result.Experience.TotalExperience
		}
	}
	if result.ProfileFeedback != nil {
		rec.CandidateEmail = result.ProfileFeedback.CandidateEmail
		rec.FreelancerStatus = result.ProfileFeedback.FreelancerStatus
		rec.HasLinkedIn = result.ProfileFeedback.HasLinkedIn
		rec.LinkedInURL = result.ProfileFeedback.LinkedInURL
		rec.HasEmail = result.ProfileFeedback.HasEmail
	}

	return rec, nil
}
