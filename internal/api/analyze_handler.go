package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"ats-scanner/internal/analysis"
)

type AnalysisRequest struct {
	RoleID     string `json:"role_id" validate:"required"`
	ResumeText string `json:"resume_text" validate:"required"`
}

// AnalyzeHandler runs the hybrid scoring pipeline for one resume
// @Summary Analyze a resume against a role
// @Description Compute keyword, formatting and AI scores, blend them into a final ATS score and generate a PDF report
// @Tags resume
// @Accept json
// @Produce json
// @Param request body AnalysisRequest true "Role id and resume text"
// @Success 200 {object} analysis.Response
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /analyze [post]
func (a *API) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, "role_id and resume_text are required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	resp, err := a.analysis.Analyze(r.Context(), req.RoleID, req.ResumeText)
	if err != nil {
		if errors.Is(err, analysis.ErrRoleNotFound) {
			http.Error(w, "Role not found", http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] Analysis failed: %v", err)
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	log.Printf("Analysis for role %s done in %v (final score %.2f)",
		req.RoleID, time.Since(start), resp.FinalATSScore)

	writeJSON(w, http.StatusOK, resp)
}
