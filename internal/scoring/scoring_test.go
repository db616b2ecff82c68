package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordDensity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     float64
	}{
		{
			name:     "all keywords present",
			text:     "Built Python services with Docker and SQL",
			keywords: []string{"python", "docker", "sql"},
			want:     100.00,
		},
		{
			name:     "partial match rounds to 2 decimals",
			text:     "Python developer",
			keywords: []string{"python", "docker", "sql"},
			want:     33.33,
		},
		{
			name:     "no matches",
			text:     "Professional chef with pastry experience",
			keywords: []string{"python", "docker"},
			want:     0,
		},
		{
			name:     "empty keyword list yields zero",
			text:     "anything at all",
			keywords: nil,
			want:     0,
		},
		{
			name:     "empty resume text",
			text:     "",
			keywords: []string{"python"},
			want:     0,
		},
		{
			name:     "case insensitive",
			text:     "EXPERT IN PYTHON AND DOCKER",
			keywords: []string{"Python", "docker"},
			want:     100.00,
		},
		{
			name:     "substring containment without word boundaries",
			text:     "Senior JavaScript engineer",
			keywords: []string{"java", "javascript"},
			want:     100.00,
		},
		{
			name:     "multi-word phrase keyword",
			text:     "Led incident response and penetration testing exercises",
			keywords: []string{"incident response", "penetration testing", "siem", "firewalls"},
			want:     50.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordDensity(tt.text, tt.keywords)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestKeywordDensityMonotonic(t *testing.T) {
	keywords := []string{"python", "docker", "sql", "aws"}

	prev := 0.0
	text := ""
	for _, kw := range keywords {
		text += " worked with " + kw
		score := KeywordDensity(text, keywords)
		assert.GreaterOrEqual(t, score, prev, "score must not decrease as keywords appear")
		prev = score
	}
	assert.Equal(t, 100.0, prev)
}

func TestFormattingScore(t *testing.T) {
	long := strings.Repeat("x", 500)
	lines := strings.Repeat("\n", 10)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"long and well structured", long + lines, 100},
		{"short but structured", "short" + lines, 70},
		{"long single block", long, 80},
		{"short single block takes both deductions", "tiny", 50},
		{"empty text", "", 50},
		{"boundary: exactly 500 chars and 10 newlines", long[:490] + lines, 100},
		{"boundary: 499 chars with 10 newlines", long[:489] + lines, 70},
		{"boundary: 9 newlines", long + strings.Repeat("\n", 9), 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormattingScore(tt.text)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 40)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name         string
		ai, kw, fmtS float64
		want         float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"all hundred", 100, 100, 100, 100},
		{"ai only", 100, 0, 0, 60},
		{"keyword only", 0, 100, 0, 25},
		{"formatting only", 0, 0, 100, 15},
		{"mixed", 80, 50, 70, 71},
		{"rounding to 2 decimals", 33.333, 66.667, 40, 42.67},
		{"ai failure leaves deterministic share", 0, 60.5, 80, 27.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blend(tt.ai, tt.kw, tt.fmtS))
		})
	}
}

// Scenario from the scoring contract: a 600-char resume with 12 line
// breaks containing every software_engineer keyword scores 100/100 on
// the deterministic axes.
func TestDeterministicScoresFullMatch(t *testing.T) {
	keywords := []string{
		"python", "javascript", "react", "fastapi", "sql",
		"git", "docker", "aws", "api", "microservices",
	}
	text := strings.Join(keywords, "\n") + "\n\n\n" + strings.Repeat("experience ", 50)
	assert.GreaterOrEqual(t, len(text), 600)
	assert.GreaterOrEqual(t, strings.Count(text, "\n"), 12)

	assert.Equal(t, 100.00, KeywordDensity(text, keywords))
	assert.Equal(t, 100, FormattingScore(text))
}
