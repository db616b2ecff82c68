// Package llm talks to the Ollama chat endpoint that produces the
// qualitative half of the ATS score. The model's output is schema-free:
// callers get a loosely typed map and are expected to run it through
// the analysis normalizer.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const defaultTimeout = 180 * time.Second

type Service struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewService(baseURL, model string) *Service {
	if model == "" {
		model = "llama3"
	}
	return &Service{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error"`
}

// AnalyzeResume asks the model to evaluate a resume for a role and
// returns the raw analysis object. It never returns an error: every
// failure mode degrades to a value the normalizer knows how to handle.
// Transport, timeout and HTTP-status failures yield a fixed
// unavailable marker with a zero score; a reply that is not valid JSON
// is wrapped as a bare summary so the text is not lost.
func (s *Service) AnalyzeResume(ctx context.Context, resumeText, roleTitle string) map[string]interface{} {
	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are an ATS resume evaluator. Return ONLY valid JSON.",
			},
			{
				Role:    "user",
				Content: buildUserPrompt(resumeText, roleTitle),
			},
		},
		Stream: false,
		Format: "json",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return unavailable(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/chat", bytes.NewBuffer(body))
	if err != nil {
		return unavailable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[DEBUG] Calling Ollama model %s (resume %d chars)", s.model, len(resumeText))
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[ERROR] Ollama analysis failed after %v: %v", time.Since(start), err)
		return unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("Ollama API error: %d", resp.StatusCode)
		log.Printf("[ERROR] %v", err)
		return unavailable(err)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[ERROR] Failed to decode Ollama response: %v", err)
		return unavailable(err)
	}
	if result.Error != "" {
		err := fmt.Errorf("Ollama error: %s", result.Error)
		log.Printf("[ERROR] %v", err)
		return unavailable(err)
	}

	log.Printf("[DEBUG] Ollama request took %v, content %d chars", time.Since(start), len(result.Message.Content))

	var analysis map[string]interface{}
	if err := json.Unmarshal([]byte(result.Message.Content), &analysis); err != nil {
		// JSON mode did not hold; keep the raw text as a summary.
		return map[string]interface{}{"summary": result.Message.Content}
	}
	return analysis
}

// Ping reports whether the Ollama server answers at all. Used by the
// status endpoint with its own short deadline.
func (s *Service) Ping(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func unavailable(err error) map[string]interface{} {
	return map[string]interface{}{
		"atsScore":   0,
		"summary":    "AI Service Unavailable",
		"weaknesses": []interface{}{err.Error()},
	}
}

func buildUserPrompt(resumeText, roleTitle string) string {
	return fmt.Sprintf(`
Evaluate this resume for the role: %[1]s

Return JSON ONLY in this format:
{
  "atsScore": <number>,
  "strengths": ["<strength1>", "<strength2>"],
  "weaknesses": ["<weakness1>", "<weakness2>"],
  "improvementSuggestions": ["<improvement1>", "<improvement2>"],
  "summary": "<summary of candidate>",
  "bestRole": "%[1]s",
  "candidateName": "Candidate",
  "skills": [],
  "experienceHighlights": [],
  "education": [],
  "section_scores": { "skills": 0, "experience": 0, "education": 0, "formatting": 0, "relevance": 0 }
}

Resume:
%[2]s
`, roleTitle, resumeText)
}
