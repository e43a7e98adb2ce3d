package server

import "net/http"

// handleHealth reports liveness and whether the model client is wired.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"ok":     true,
		"gemini": s.llmClient != nil,
	})
}

// handleIndex describes the API.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"name":    "TalentHive Resume Analyzer API",
		"version": "1.0.0",
		"endpoints": []string{
			"GET /health",
			"POST /analyze",
			"GET /history",
			"GET /clients",
			"GET /clients/{client_name}/jds",
			"GET /clients/{client_name}/jds/{jd_title}",
			"PUT /clients/{client_name}/jds/{jd_title}",
		},
	})
}
