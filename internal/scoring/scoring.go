// Package scoring implements the deterministic half of the hybrid ATS
// score: keyword density, a structural formatting heuristic, and the
// weighted blend that combines them with the AI score.
package scoring

import (
	"math"
	"strings"
)

// Blend weights are fixed constants. Role profiles carry their own
// per-category weight maps, but those are advisory metadata for the
// LLM prompt and the UI; they do not feed this formula.
const (
	aiWeight         = 0.6
	keywordWeight    = 0.25
	formattingWeight = 0.15
)

// KeywordDensity returns the percentage of keywords found in the resume
// text, rounded to 2 decimal places. Matching is case-insensitive
// substring containment: "java" matches inside "javascript". That
// imprecision is intentional and callers depend on the scored output
// staying stable, so do not upgrade to word-boundary matching.
func KeywordDensity(resumeText string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	text := strings.ToLower(resumeText)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matched++
		}
	}

	density := float64(matched) / float64(len(keywords)) * 100
	return round2(density)
}

// FormattingScore is a structural quality heuristic over the raw resume
// text. It starts at 100, deducts 30 when the text is shorter than 500
// characters and 20 when it has fewer than 10 line breaks, and never
// drops below 40.
func FormattingScore(resumeText string) int {
	score := 100

	if len(resumeText) < 500 {
		score -= 30
	}
	if strings.Count(resumeText, "\n") < 10 {
		score -= 20
	}

	if score < 40 {
		score = 40
	}
	return score
}

// Blend combines the AI score with the deterministic sub-scores into
// the final hybrid score, rounded to 2 decimal places.
func Blend(aiScore, keywordScore, formattingScore float64) float64 {
	final := aiScore*aiWeight + keywordScore*keywordWeight + formattingScore*formattingWeight
	return round2(final)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
