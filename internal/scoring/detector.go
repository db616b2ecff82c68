package scoring

import (
	"strings"

	"ats-scanner/internal/roles"
)

// DefaultRoleID is returned when role detection has no catalog to work
// against.
const DefaultRoleID = "software_engineer"

// DetectRole picks the catalog role whose keywords appear most often in
// the resume text and returns its id together with the raw match count.
// Matching uses the same case-insensitive containment semantics as
// KeywordDensity but is unnormalized. Ties go to the role that appears
// first in the catalog, which is why the catalog preserves insertion
// order.
func DetectRole(resumeText string, catalog *roles.Catalog) (string, int) {
	if catalog == nil || catalog.Len() == 0 {
		return DefaultRoleID, 0
	}

	text := strings.ToLower(resumeText)

	bestID := ""
	bestCount := -1
	for _, p := range catalog.All() {
		count := 0
		for _, kw := range p.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				count++
			}
		}
		if count > bestCount {
			bestID = p.ID
			bestCount = count
		}
	}

	return bestID, bestCount
}
