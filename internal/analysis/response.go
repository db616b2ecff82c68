package analysis

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Skill is a single skill entry in the analysis response.
type Skill struct {
	Name     string `json:"name" mapstructure:"name"`
	Category string `json:"category" mapstructure:"category"`
}

// Response is the complete analyze result returned to the client.
// Every field is always populated: the orchestrator merges normalized
// LLM output over a full default map before decoding into this type.
type Response struct {
	ATSScore      int    `json:"atsScore" mapstructure:"atsScore"`
	BestRole      string `json:"bestRole" mapstructure:"bestRole"`
	CandidateName string `json:"candidateName" mapstructure:"candidateName"`
	Summary       string `json:"summary" mapstructure:"summary"`

	Skills                 []Skill  `json:"skills" mapstructure:"skills"`
	ExperienceHighlights   []string `json:"experienceHighlights" mapstructure:"experienceHighlights"`
	Education              []string `json:"education" mapstructure:"education"`
	Strengths              []string `json:"strengths" mapstructure:"strengths"`
	Weaknesses             []string `json:"weaknesses" mapstructure:"weaknesses"`
	ImprovementSuggestions []string `json:"improvementSuggestions" mapstructure:"improvementSuggestions"`
	MissingKeywords        []string `json:"missing_keywords" mapstructure:"missing_keywords"`

	SectionScores     map[string]float64 `json:"section_scores" mapstructure:"section_scores"`
	KeywordMatchScore float64            `json:"keyword_match_score" mapstructure:"keyword_match_score"`
	FinalATSScore     float64            `json:"final_ats_score" mapstructure:"final_ats_score"`

	ReportFile *string `json:"report_file" mapstructure:"report_file"`
}

// decodeResponse turns the merged defaults+analysis map into a typed
// Response. Decoding is weakly typed so numeric strings and stray
// number types from the LLM still land in the right fields.
func decodeResponse(merged map[string]interface{}) (*Response, error) {
	var resp Response
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &resp,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building response decoder: %w", err)
	}
	if err := dec.Decode(merged); err != nil {
		return nil, fmt.Errorf("decoding analysis response: %w", err)
	}

	// JSON output should show empty arrays, not null, for list fields.
	if resp.Skills == nil {
		resp.Skills = []Skill{}
	}
	for _, p := range []*[]string{
		&resp.ExperienceHighlights, &resp.Education, &resp.Strengths,
		&resp.Weaknesses, &resp.ImprovementSuggestions, &resp.MissingKeywords,
	} {
		if *p == nil {
			*p = []string{}
		}
	}
	if resp.SectionScores == nil {
		resp.SectionScores = map[string]float64{}
	}

	return &resp, nil
}
