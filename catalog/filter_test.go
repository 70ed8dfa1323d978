package catalog

import (
	"testing"

	"eureka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture(t *testing.T) []models.Project {
	t.Helper()

	a := MakeProject(t, 1, "2024-01-01")
	a.Title = "Library Automation"
	a.Author = "Ana Torres"
	a.Technologies = []string{"React", "PostgreSQL"}
	a.Category = models.CategoryDevelopment
	a.Campus = models.CampusLima

	b := MakeProject(t, 2, "2024-03-01")
	b.Title = "Crop Disease Detection"
	b.Author = "Carlos Vega"
	b.Technologies = []string{"Python", "TensorFlow"}
	b.Category = models.CategoryTechnology
	b.Campus = models.CampusArequipa

	c := MakeProject(t, 3, "2024-02-01")
	c.Title = "Pedestrian Bridge"
	c.Author = "Luis Ramos"
	c.Technologies = []string{"AutoCAD"}
	c.Category = models.CategoryEngineering
	c.Campus = models.CampusLima

	return []models.Project{a, b, c}
}

func TestFilter_DefaultSortsNewestFirst(t *testing.T) {
	projects := []models.Project{
		MakeProject(t, 1, "2024-01-01"),
		MakeProject(t, 2, "2024-03-01"),
		MakeProject(t, 3, "2024-02-01"),
	}

	result := Filter(projects, models.FilterSpec{})

	assert.Equal(t, []int{2, 3, 1}, projectIDs(result))
}

func TestFilter_StableOnEqualDates(t *testing.T) {
	projects := []models.Project{
		MakeProject(t, 1, "2024-01-01"),
		MakeProject(t, 2, "2024-02-01"),
		MakeProject(t, 3, "2024-01-01"),
		MakeProject(t, 4, "2024-02-01"),
	}

	result := Filter(projects, models.FilterSpec{})

	assert.Equal(t, []int{2, 4, 1, 3}, projectIDs(result))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		spec     models.FilterSpec
		expected []int
	}{
		{
			name:     "no filters",
			spec:     models.FilterSpec{},
			expected: []int{2, 3, 1},
		},
		{
			name:     "search title case-insensitive",
			spec:     models.FilterSpec{Search: "LIBRARY"},
			expected: []int{1},
		},
		{
			name:     "search author",
			spec:     models.FilterSpec{Search: "vega"},
			expected: []int{2},
		},
		{
			name:     "search technology",
			spec:     models.FilterSpec{Search: "sql"},
			expected: []int{1},
		},
		{
			name:     "search matches nothing",
			spec:     models.FilterSpec{Search: "blockchain"},
			expected: []int{},
		},
		{
			name:     "category only",
			spec:     models.FilterSpec{Category: models.CategoryEngineering},
			expected: []int{3},
		},
		{
			name:     "campus only",
			spec:     models.FilterSpec{Campus: models.CampusLima},
			expected: []int{3, 1},
		},
		{
			name:     "campus and category",
			spec:     models.FilterSpec{Campus: models.CampusLima, Category: models.CategoryDevelopment},
			expected: []int{1},
		},
		{
			name:     "all three combine with AND",
			spec:     models.FilterSpec{Search: "bridge", Campus: models.CampusArequipa},
			expected: []int{},
		},
		{
			name:     "campus without matches",
			spec:     models.FilterSpec{Campus: models.CampusChiclayo},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(filterFixture(t), tt.spec)

			require.NotNil(t, result)
			assert.Equal(t, tt.expected, projectIDs(result))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	projects := filterFixture(t)
	before := projectIDs(projects)

	_ = Filter(projects, models.FilterSpec{Campus: models.CampusLima})

	assert.Equal(t, before, projectIDs(projects))
}

func TestFilter_Idempotent(t *testing.T) {
	specs := []models.FilterSpec{
		{},
		{Search: "a"},
		{Campus: models.CampusLima},
		{Search: "o", Category: models.CategoryTechnology},
	}

	for _, spec := range specs {
		once := Filter(filterFixture(t), spec)
		twice := Filter(once, spec)
		assert.Equal(t, once, twice)
	}
}

func TestFilterBuilder_Conditions(t *testing.T) {
	fb := NewFilterBuilder()
	assert.Equal(t, 0, fb.Len())

	fb.AddSearch("")
	fb.AddCategory(0)
	fb.AddCampus(0)
	assert.Equal(t, 0, fb.Len(), "unset fields add no condition")

	fb.AddSearch("x")
	fb.AddCategory(models.CategoryTechnology)
	fb.AddCampus(models.CampusCusco)
	assert.Equal(t, 3, fb.Len())
}

func TestPendingQueue(t *testing.T) {
	projects := filterFixture(t)
	projects[0].Status = models.StatusInReview
	projects[1].Status = models.StatusApproved
	projects[2].Status = models.StatusUploaded

	result := PendingQueue(projects)

	assert.Equal(t, []int{1, 3}, projectIDs(result), "oldest submission first")
}
