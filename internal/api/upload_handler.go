package api

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"ats-scanner/internal/scoring"
)

type UploadResponse struct {
	Filename      string `json:"filename"`
	ExtractedText string `json:"extracted_text"`
	Status        string `json:"status"`
	DetectedRole  string `json:"detected_role"`
}

// UploadHandler handles resume uploads: extract text, auto-detect role
// @Summary Upload a resume
// @Description Upload a resume file (PDF/DOCX/TXT), extract its text and auto-detect the best matching role
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt":
	default:
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT)", http.StatusBadRequest)
		return
	}

	text, err := a.extractor.ExtractText(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("[ERROR] Upload extraction failed: %v", err)
		http.Error(w, "failed to extract resume text", http.StatusInternalServerError)
		return
	}

	log.Printf("Resume extracted: %s (%d chars)", header.Filename, len(text))

	detectedRole, matches := scoring.DetectRole(text, a.catalog)
	log.Printf("Detected role %s (%d keyword matches)", detectedRole, matches)

	status := "success"
	if strings.Contains(text, "Warning:") {
		status = "partial_success"
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Filename:      header.Filename,
		ExtractedText: text,
		Status:        status,
		DetectedRole:  detectedRole,
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] Failed to encode JSON response: %v", err)
	}
}
