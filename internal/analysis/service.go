package analysis

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"ats-scanner/internal/report"
	"ats-scanner/internal/roles"
	"ats-scanner/internal/scoring"
)

// ErrRoleNotFound is the only client-facing error the orchestrator
// produces; every upstream failure degrades into the response instead.
var ErrRoleNotFound = errors.New("role not found")

// Analyzer is the AI half of the pipeline. Implementations must not
// fail: degraded output is returned as a value (see llm.Service).
type Analyzer interface {
	AnalyzeResume(ctx context.Context, resumeText, roleTitle string) map[string]interface{}
}

// Renderer writes the PDF report side effect.
type Renderer interface {
	Render(path string, data report.Data) error
}

// Service sequences the hybrid scoring pipeline: deterministic
// sub-scores, AI analysis, normalization, blending and response
// assembly.
type Service struct {
	catalog    *roles.Catalog
	ai         Analyzer
	renderer   Renderer
	reportsDir string
	now        func() time.Time
}

func NewService(catalog *roles.Catalog, ai Analyzer, renderer Renderer, reportsDir string) *Service {
	return &Service{
		catalog:    catalog,
		ai:         ai,
		renderer:   renderer,
		reportsDir: reportsDir,
		now:        time.Now,
	}
}

// Analyze runs the full pipeline for one resume against one role.
// Apart from an unknown role id it always returns a complete,
// schema-valid response, whatever the LLM or the report renderer do.
func (s *Service) Analyze(ctx context.Context, roleID, resumeText string) (*Response, error) {
	profile, ok := s.catalog.Get(roleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
	}

	keywordScore := scoring.KeywordDensity(resumeText, profile.Keywords)
	formattingScore := scoring.FormattingScore(resumeText)

	raw := s.ai.AnalyzeResume(ctx, resumeText, profile.Title)
	normalized, dropped := Normalize(raw)
	if dropped > 0 {
		log.Printf("Normalizer dropped %d malformed entries from AI output", dropped)
	}

	// Re-coerce defensively; Normalize already handled the string case
	// but the field may be absent entirely.
	aiScore := CoerceScore(normalized["atsScore"])

	finalScore := scoring.Blend(aiScore, keywordScore, float64(formattingScore))

	reportFile := s.renderReport(normalized, profile.Title, finalScore, keywordScore, aiScore)

	merged := s.defaults(profile, aiScore, keywordScore, finalScore)
	for k, v := range normalized {
		merged[k] = v
	}
	// The blended score wins over anything the model claimed, and the
	// report reference is attached last.
	merged["final_ats_score"] = finalScore
	merged["atsScore"] = int(finalScore)
	merged["report_file"] = reportValue(reportFile)

	resp, err := decodeResponse(merged)
	if err != nil {
		// Some field survived normalization in an undecodable shape;
		// fall back to the defaults so the response stays complete.
		log.Printf("[ERROR] Analysis response decode failed, serving defaults: %v", err)
		fallback := s.defaults(profile, aiScore, keywordScore, finalScore)
		fallback["final_ats_score"] = finalScore
		fallback["atsScore"] = int(finalScore)
		fallback["report_file"] = reportValue(reportFile)
		return decodeResponse(fallback)
	}
	return resp, nil
}

// defaults covers every response field so the merge in Analyze can
// never produce a partial object.
func (s *Service) defaults(profile *roles.Profile, aiScore, keywordScore, finalScore float64) map[string]interface{} {
	return map[string]interface{}{
		"atsScore":               aiScore,
		"bestRole":               profile.Title,
		"candidateName":          "Unknown",
		"summary":                "No summary",
		"skills":                 []interface{}{},
		"experienceHighlights":   []interface{}{},
		"education":              []interface{}{},
		"strengths":              []interface{}{},
		"weaknesses":             []interface{}{},
		"improvementSuggestions": []interface{}{},
		"missing_keywords":       []interface{}{},
		"section_scores":         map[string]interface{}{},
		"keyword_match_score":    keywordScore,
		"final_ats_score":        finalScore,
		"report_file":            nil,
	}
}

// renderReport builds the report descriptor and hands it to the
// renderer. Rendering is fire-and-forget relative to the response: a
// failure is logged and the response simply carries no report
// reference.
func (s *Service) renderReport(normalized map[string]interface{}, roleTitle string, finalScore, keywordScore, aiScore float64) *string {
	if s.renderer == nil {
		return nil
	}

	filename := fmt.Sprintf("report_%s.pdf", shortID())
	data := report.Data{
		GeneratedOn:   s.now().Format("2006-01-02 15:04"),
		CandidateName: stringField(normalized, "candidateName", "Unknown"),
		TargetRole:    roleTitle,
		FinalScore:    finalScore,
		KeywordScore:  keywordScore,
		AIScore:       aiScore,
		Strengths:     stringList(normalized["strengths"]),
		Improvements:  stringList(normalized["improvementSuggestions"]),
	}

	if err := os.MkdirAll(s.reportsDir, 0755); err != nil {
		log.Printf("[ERROR] Report generation failed: %v", err)
		return nil
	}
	if err := s.renderer.Render(filepath.Join(s.reportsDir, filename), data); err != nil {
		log.Printf("[ERROR] Report generation failed: %v", err)
		return nil
	}
	return &filename
}

// reportValue keeps a missing report as an untyped nil so the decoder
// leaves ReportFile null instead of chasing a typed nil pointer.
func reportValue(filename *string) interface{} {
	if filename == nil {
		return nil
	}
	return *filename
}

// shortID returns an 8-hex-char suffix for report filenames.
func shortID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:4])
}

func stringList(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprintf("%v", item))
		}
	}
	return out
}
