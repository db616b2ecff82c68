package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkillShapes(t *testing.T) {
	raw := map[string]interface{}{
		"skills": []interface{}{
			"SQL",
			"Python",
			map[string]interface{}{"name": "Go", "category": "Backend"},
			map[string]interface{}{"name": "Kafka"},
			map[string]interface{}{"level": "expert"}, // no name, dropped
			42.0,                                      // unrecognized, dropped
		},
	}

	normalized, dropped := Normalize(raw)

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []interface{}{
		map[string]interface{}{"name": "SQL", "category": "Technical"},
		map[string]interface{}{"name": "Python", "category": "Technical"},
		map[string]interface{}{"name": "Go", "category": "Backend"},
		map[string]interface{}{"name": "Kafka", "category": "Technical"},
	}, normalized["skills"])
}

func TestNormalizeEducationShapes(t *testing.T) {
	tests := []struct {
		name  string
		entry interface{}
		want  string
	}{
		{
			name:  "full record with years",
			entry: map[string]interface{}{"institution": "MIT", "degree": "BSc", "years": []interface{}{2018.0, 2022.0}},
			want:  "BSc from MIT (2018-2022)",
		},
		{
			name:  "record without years",
			entry: map[string]interface{}{"institution": "Stanford", "degree": "MSc"},
			want:  "MSc from Stanford",
		},
		{
			name:  "record with wrong years length",
			entry: map[string]interface{}{"institution": "Oxford", "degree": "PhD", "years": []interface{}{2020.0}},
			want:  "PhD from Oxford",
		},
		{
			name:  "record without degree trims leading space",
			entry: map[string]interface{}{"institution": "MIT"},
			want:  "from MIT",
		},
		{
			name:  "record without institution",
			entry: map[string]interface{}{"degree": "BSc"},
			want:  "BSc from Unknown",
		},
		{
			name:  "bare string passes through",
			entry: "Self-taught",
			want:  "Self-taught",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, _ := Normalize(map[string]interface{}{"education": []interface{}{tt.entry}})
			list := normalized["education"].([]interface{})
			require.Len(t, list, 1)
			assert.Equal(t, tt.want, list[0])
		})
	}
}

func TestNormalizeEducationDropsUnrecognized(t *testing.T) {
	normalized, dropped := Normalize(map[string]interface{}{
		"education": []interface{}{"BSc from MIT", 3.14, true},
	})

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []interface{}{"BSc from MIT"}, normalized["education"])
}

func TestNormalizeATSScoreCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"number stays", 85.5, 85.5},
		{"numeric string parses", "72", 72},
		{"numeric string with spaces", " 60.25 ", 60.25},
		{"garbage string becomes zero", "excellent", 0},
		{"null becomes zero", nil, 0},
		{"list becomes zero", []interface{}{1.0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, _ := Normalize(map[string]interface{}{"atsScore": tt.in})
			assert.Equal(t, tt.want, normalized["atsScore"])
		})
	}
}

func TestNormalizeUnparseableInputYieldsFailureSchema(t *testing.T) {
	for _, raw := range []interface{}{
		"the model rambled instead of returning JSON",
		nil,
		42,
		[]interface{}{"not", "an", "object"},
	} {
		normalized, dropped := Normalize(raw)

		assert.Equal(t, 0, dropped)
		assert.Equal(t, float64(0), normalized["atsScore"])
		assert.Equal(t, "Analysis failed", normalized["summary"])
		assert.Equal(t, "Unknown", normalized["candidateName"])
		assert.Equal(t, "Unknown", normalized["bestRole"])
		assert.Equal(t, []interface{}{"AI response parsing failed"}, normalized["weaknesses"])
		assert.Equal(t, []interface{}{"Ensure Ollama is running correctly"}, normalized["improvementSuggestions"])
		assert.Empty(t, normalized["skills"])
		assert.Empty(t, normalized["education"])
		assert.Empty(t, normalized["section_scores"])
	}
}

func TestNormalizeStringThatIsJSONParses(t *testing.T) {
	normalized, _ := Normalize(`{"atsScore": "88", "summary": "fine"}`)

	assert.Equal(t, float64(88), normalized["atsScore"])
	assert.Equal(t, "fine", normalized["summary"])
}

func TestNormalizeScalarListFieldsAreWrapped(t *testing.T) {
	normalized, _ := Normalize(map[string]interface{}{
		"strengths":  "good communicator",
		"weaknesses": []interface{}{"short tenure"},
	})

	assert.Equal(t, []interface{}{"good communicator"}, normalized["strengths"])
	assert.Equal(t, []interface{}{"short tenure"}, normalized["weaknesses"])
}

func TestNormalizeWrongTypedContainersAreReplaced(t *testing.T) {
	normalized, dropped := Normalize(map[string]interface{}{
		"skills":         "Python, SQL",
		"education":      map[string]interface{}{"degree": "BSc"},
		"section_scores": []interface{}{1.0, 2.0},
	})

	assert.Equal(t, 3, dropped)
	assert.Equal(t, []interface{}{}, normalized["skills"])
	assert.Equal(t, []interface{}{}, normalized["education"])
	assert.Equal(t, map[string]interface{}{}, normalized["section_scores"])
}

func TestNormalizePassesUnknownFieldsThrough(t *testing.T) {
	normalized, _ := Normalize(map[string]interface{}{
		"summary":     "A capable engineer",
		"confidence":  0.92,
		"extra_field": "kept",
	})

	assert.Equal(t, "A capable engineer", normalized["summary"])
	assert.Equal(t, 0.92, normalized["confidence"])
	assert.Equal(t, "kept", normalized["extra_field"])
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := map[string]interface{}{
		"skills":   []interface{}{"SQL"},
		"atsScore": "77",
	}

	Normalize(raw)

	assert.Equal(t, "77", raw["atsScore"])
	assert.Equal(t, []interface{}{"SQL"}, raw["skills"])
}

func TestNormalizeIdempotent(t *testing.T) {
	canonical := map[string]interface{}{
		"atsScore":               74.0,
		"candidateName":          "Jane Doe",
		"bestRole":               "Backend Developer",
		"summary":                "Strong candidate",
		"skills":                 []interface{}{map[string]interface{}{"name": "Go", "category": "Technical"}},
		"education":              []interface{}{"BSc from MIT (2018-2022)"},
		"strengths":              []interface{}{"Go"},
		"weaknesses":             []interface{}{},
		"improvementSuggestions": []interface{}{},
		"experienceHighlights":   []interface{}{"Led a platform team"},
		"missing_keywords":       []interface{}{"kubernetes"},
		"section_scores":         map[string]interface{}{"skills": 80.0},
	}

	once, droppedOnce := Normalize(canonical)
	twice, droppedTwice := Normalize(once)

	assert.Equal(t, once, twice)
	assert.Zero(t, droppedOnce)
	assert.Zero(t, droppedTwice)
}
