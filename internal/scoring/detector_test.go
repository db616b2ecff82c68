package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ats-scanner/internal/roles"
)

func TestDetectRole(t *testing.T) {
	catalog := roles.Default()

	tests := []struct {
		name      string
		text      string
		wantRole  string
		wantCount int
	}{
		{
			name:      "devops heavy resume",
			text:      "Docker, Kubernetes, CI/CD pipelines on AWS. Linux administration, Terraform modules, monitoring dashboards.",
			wantRole:  "devops_engineer",
			wantCount: 7,
		},
		{
			name:      "frontend resume",
			text:      "HTML, CSS, JavaScript, React with TypeScript and Redux. Strong UI/UX sense and responsive design.",
			wantRole:  "frontend_developer",
			wantCount: 9,
		},
		{
			name:      "no keywords at all falls to first role with zero",
			text:      "Professional chef. Pastry, sourdough, plating.",
			wantRole:  "software_engineer",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, count := DetectRole(tt.text, catalog)
			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestDetectRoleTieBreaksOnCatalogOrder(t *testing.T) {
	catalog := roles.NewCatalog([]roles.Profile{
		{ID: "first", Keywords: []string{"go", "sql"}},
		{ID: "second", Keywords: []string{"go", "sql"}},
	})

	role, count := DetectRole("go and sql developer", catalog)
	assert.Equal(t, "first", role)
	assert.Equal(t, 2, count)
}

func TestDetectRoleEmptyCatalog(t *testing.T) {
	role, count := DetectRole("anything", roles.NewCatalog(nil))
	assert.Equal(t, DefaultRoleID, role)
	assert.Equal(t, 0, count)

	role, count = DetectRole("anything", nil)
	assert.Equal(t, DefaultRoleID, role)
	assert.Equal(t, 0, count)
}
