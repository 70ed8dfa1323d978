package catalog

import (
	"testing"
	"time"

	"eureka/models"

	"github.com/stretchr/testify/require"
)

// TestNow is the fixed instant used by test catalogs.
var TestNow = time.Date(2024, time.May, 10, 15, 30, 0, 0, time.UTC)

// NewTestCatalog returns a catalog loaded from the embedded seed with the
// clock frozen at TestNow.
func NewTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	seed, err := LoadSeed()
	require.NoError(t, err)

	authors := NewAuthorDirectory(seed.Authors, seed.UserModels())
	return New(seed.Projects, authors, WithClock(func() time.Time { return TestNow }))
}

// Day parses a YYYY-MM-DD date and fails the test on error.
func Day(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := parseDay(s)
	require.NoError(t, err)
	return d
}

// MakeProject builds a minimal project for table tests.
func MakeProject(t *testing.T, id int, date string) models.Project {
	t.Helper()

	return models.Project{
		ID:             id,
		Title:          "Project",
		Author:         "Author",
		Campus:         models.CampusLima,
		Category:       models.CategoryTechnology,
		Status:         models.StatusUploaded,
		Technologies:   []string{},
		SubmissionDate: Day(t, date),
		ApprovalHistory: []models.ApprovalEntry{
			{Status: models.StatusUploaded, Date: Day(t, date)},
		},
		Comments: []models.Comment{},
	}
}

func projectIDs(projects []models.Project) []int {
	ids := make([]int, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}
