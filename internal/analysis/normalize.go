// Package analysis turns schema-free LLM output into the canonical
// analysis schema and orchestrates the hybrid scoring pipeline.
package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Normalize repairs raw LLM output field by field so the rest of the
// pipeline never has to type-check it. It is a total function: any
// input shape produces a usable result. Fields the model omitted stay
// omitted here; the orchestrator's default map fills them in.
//
// The second return value counts list entries that matched no known
// shape and were dropped, so the orchestrator can log what would
// otherwise be silent data loss.
func Normalize(raw interface{}) (map[string]interface{}, int) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return normalizeObject(v)
	case string:
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			return normalizeObject(parsed)
		}
		return failureSchema(), 0
	default:
		return failureSchema(), 0
	}
}

// listFields are the schema fields that must decode as ordered string
// sequences when present.
var listFields = []string{
	"strengths", "weaknesses", "improvementSuggestions",
	"experienceHighlights", "missing_keywords",
}

func normalizeObject(in map[string]interface{}) (map[string]interface{}, int) {
	data := make(map[string]interface{}, len(in))
	for k, v := range in {
		data[k] = v
	}

	dropped := 0

	if raw, ok := data["skills"]; ok {
		skills, n := normalizeSkills(raw)
		data["skills"] = skills
		dropped += n
	}

	if raw, ok := data["education"]; ok {
		education, n := normalizeEducation(raw)
		data["education"] = education
		dropped += n
	}

	for _, field := range listFields {
		raw, ok := data[field]
		if !ok {
			continue
		}
		list, isList := raw.([]interface{})
		if !isList {
			// A scalar where a list belongs; keep the value.
			list = []interface{}{raw}
		}
		clean := make([]interface{}, 0, len(list))
		for _, entry := range list {
			switch e := entry.(type) {
			case string:
				clean = append(clean, e)
			case float64, int, bool, json.Number:
				clean = append(clean, fmt.Sprintf("%v", e))
			default:
				// nil entries and nested containers carry nothing a
				// string list can represent.
				dropped++
			}
		}
		data[field] = clean
	}

	if raw, ok := data["section_scores"]; ok {
		if _, isMap := raw.(map[string]interface{}); !isMap {
			data["section_scores"] = map[string]interface{}{}
			dropped++
		}
	}

	if raw, ok := data["atsScore"]; ok {
		data["atsScore"] = CoerceScore(raw)
	}

	return data, dropped
}

// normalizeSkills accepts bare strings and {name, category} records.
// Strings are wrapped with the default "Technical" category; records
// without a category get the same default; anything else is dropped.
func normalizeSkills(raw interface{}) ([]interface{}, int) {
	list, ok := raw.([]interface{})
	if !ok {
		return []interface{}{}, 1
	}

	dropped := 0
	out := make([]interface{}, 0, len(list))
	for _, entry := range list {
		switch skill := entry.(type) {
		case string:
			out = append(out, map[string]interface{}{"name": skill, "category": "Technical"})
		case map[string]interface{}:
			if _, hasName := skill["name"]; !hasName {
				dropped++
				continue
			}
			rec := make(map[string]interface{}, len(skill)+1)
			for k, v := range skill {
				rec[k] = v
			}
			if _, hasCategory := rec["category"]; !hasCategory {
				rec["category"] = "Technical"
			}
			out = append(out, rec)
		default:
			dropped++
		}
	}
	return out, dropped
}

// normalizeEducation flattens structured education records into the
// human-readable strings the response schema expects. A record with a
// two-element years list gets a "(start-end)" suffix.
func normalizeEducation(raw interface{}) ([]interface{}, int) {
	list, ok := raw.([]interface{})
	if !ok {
		return []interface{}{}, 1
	}

	dropped := 0
	out := make([]interface{}, 0, len(list))
	for _, entry := range list {
		switch edu := entry.(type) {
		case string:
			out = append(out, edu)
		case map[string]interface{}:
			out = append(out, flattenEducation(edu))
		default:
			dropped++
		}
	}
	return out, dropped
}

func flattenEducation(edu map[string]interface{}) string {
	institution := stringField(edu, "institution", "Unknown")
	degree := stringField(edu, "degree", "")

	yearSuffix := ""
	if years, ok := edu["years"].([]interface{}); ok && len(years) == 2 {
		yearSuffix = fmt.Sprintf(" (%s-%s)", formatYear(years[0]), formatYear(years[1]))
	}

	return strings.TrimSpace(fmt.Sprintf("%s from %s%s", degree, institution, yearSuffix))
}

func formatYear(v interface{}) string {
	// JSON numbers arrive as float64; integral years should not print
	// a fraction.
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%v", v)
}

func stringField(m map[string]interface{}, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	if v, ok := m[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return fallback
}

// CoerceScore converts whatever shape a score arrived in to a float64,
// treating anything unparseable as 0.
func CoerceScore(v interface{}) float64 {
	switch score := v.(type) {
	case float64:
		return score
	case int:
		return float64(score)
	case json.Number:
		f, err := score.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(score), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// failureSchema is the fixed response used when the raw input cannot
// be interpreted as a structured object at all.
func failureSchema() map[string]interface{} {
	return map[string]interface{}{
		"atsScore":               float64(0),
		"strengths":              []interface{}{},
		"weaknesses":             []interface{}{"AI response parsing failed"},
		"improvementSuggestions": []interface{}{"Ensure Ollama is running correctly"},
		"summary":                "Analysis failed",
		"candidateName":          "Unknown",
		"bestRole":               "Unknown",
		"skills":                 []interface{}{},
		"experienceHighlights":   []interface{}{},
		"education":              []interface{}{},
		"section_scores":         map[string]interface{}{},
	}
}
