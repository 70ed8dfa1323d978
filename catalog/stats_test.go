package catalog

import (
	"testing"

	"eureka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_Empty(t *testing.T) {
	d := DashboardStats(nil)

	assert.Equal(t, 0, d.TotalProjects)
	assert.Equal(t, 0, d.PendingProjects)
	assert.Equal(t, 0, d.AvgApprovalDays)
	assert.Empty(t, d.ByCampus)
	assert.Empty(t, d.ByCategory)
	assert.Empty(t, d.SubmissionsByMonth)
	assert.Equal(t, 1, d.MaxMonthSubmissions)
	assert.Len(t, d.ByStatus, 3)
}

func TestDashboardStats_Seed(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)

	d := DashboardStats(seed.Projects)

	assert.Equal(t, 6, d.TotalProjects)
	assert.Equal(t, 3, d.PendingProjects)

	// Library 14 days, crop detection 15 days, marketplace 13 days.
	assert.Equal(t, 14, d.AvgApprovalDays)

	assert.Equal(t, []models.CountEntry{
		{Key: "lima", Label: "Sede Lima", Short: "Lima", Value: 1},
		{Key: "arequipa", Label: "Sede Arequipa", Short: "Arequipa", Value: 1},
		{Key: "cusco", Label: "Sede Cusco", Short: "Cusco", Value: 2},
		{Key: "trujillo", Label: "Sede Trujillo", Short: "Trujillo", Value: 1},
		{Key: "piura", Label: "Sede Piura", Short: "Piura", Value: 1},
	}, d.ByCampus)

	assert.Equal(t, []models.CountEntry{
		{Key: "technology", Label: "Tecnología", Short: "Tecnología", Value: 2},
		{Key: "development", Label: "Desarrollo", Short: "Desarrollo", Value: 3},
		{Key: "engineering", Label: "Ingeniería General", Short: "Ingeniería", Value: 1},
	}, d.ByCategory)

	labels := []string{}
	for _, b := range d.SubmissionsByMonth {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Sept-23", "Oct-23", "Nov-23", "Feb-24", "Mar-24", "Abr-24"}, labels)
	assert.Equal(t, 1, d.MaxMonthSubmissions)
}

func TestAvgApprovalDays(t *testing.T) {
	approved := func(dates ...string) models.Project {
		p := MakeProject(t, 1, dates[0])
		p.Status = models.StatusApproved
		p.ApprovalHistory = nil
		for i, d := range dates {
			status := models.StatusInReview
			if i == 0 {
				status = models.StatusUploaded
			}
			if i == len(dates)-1 {
				status = models.StatusApproved
			}
			p.ApprovalHistory = append(p.ApprovalHistory, models.ApprovalEntry{Status: status, Date: Day(t, d)})
		}
		return p
	}

	tests := []struct {
		name     string
		projects []models.Project
		expected int
	}{
		{
			name:     "no projects",
			expected: 0,
		},
		{
			name:     "only pending projects",
			projects: []models.Project{MakeProject(t, 1, "2024-01-01")},
			expected: 0,
		},
		{
			name:     "single approved",
			projects: []models.Project{approved("2024-01-01", "2024-01-11")},
			expected: 10,
		},
		{
			name: "mean rounds to nearest",
			projects: []models.Project{
				approved("2024-01-01", "2024-01-02"),
				approved("2024-01-01", "2024-01-03"),
			},
			expected: 2,
		},
		{
			name: "history shorter than two is ignored",
			projects: []models.Project{
				approved("2024-01-01"),
				approved("2024-01-01", "2024-01-05"),
			},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvgApprovalDays(tt.projects))
		})
	}
}

func TestSubmissionsByMonth(t *testing.T) {
	projects := []models.Project{
		MakeProject(t, 1, "2024-03-15"),
		MakeProject(t, 2, "2023-12-01"),
		MakeProject(t, 3, "2024-03-01"),
		MakeProject(t, 4, "2024-01-31"),
	}

	buckets := SubmissionsByMonth(projects)

	assert.Equal(t, []models.MonthBucket{
		{Key: "2023-12", Label: "Dic-23", Value: 1},
		{Key: "2024-01", Label: "Ene-24", Value: 1},
		{Key: "2024-03", Label: "Mar-24", Value: 2},
	}, buckets)
	assert.Equal(t, []int{1, 2, 3, 4}, projectIDs(projects), "input order preserved")
}

func TestBuildAuthorProfile(t *testing.T) {
	a := MakeProject(t, 1, "2024-01-01")
	a.Views, a.Rating = 100, 4.0
	b := MakeProject(t, 2, "2024-02-01")
	b.Views, b.Rating = 900, 5.0
	b.Category = models.CategoryDevelopment

	profile := BuildAuthorProfile(models.Author{Name: "Ana"}, []models.Project{a, b})

	assert.Equal(t, 1000, profile.TotalViews)
	assert.InDelta(t, 4.5, profile.AvgRating, 1e-9)
	assert.Equal(t, "Mastermind", profile.Rank.Label)
	require.NotNil(t, profile.TopProject)
	assert.Equal(t, 2, profile.TopProject.ID)
	assert.Equal(t, []int{2, 1}, projectIDs(profile.MostViewed))
	assert.Len(t, profile.ByCategory, 2)

	skills := map[string]float64{}
	for _, s := range profile.Skills {
		skills[s.Skill] = s.Value
	}
	assert.InDelta(t, 90, skills["Innovación"], 1e-9)
	assert.InDelta(t, 10, skills["Popularidad"], 1e-9)
	assert.InDelta(t, 30, skills["Consistencia"], 1e-9)
	assert.InDelta(t, 99, skills["Calidad"], 1e-9)
	assert.InDelta(t, 50, skills["Diversidad"], 1e-9)
}

func TestBuildAuthorProfile_NoProjects(t *testing.T) {
	profile := BuildAuthorProfile(models.Author{Name: "Nobody"}, nil)

	assert.Equal(t, 0, profile.TotalViews)
	assert.Equal(t, 0.0, profile.AvgRating)
	assert.Nil(t, profile.TopProject)
	assert.Empty(t, profile.MostViewed)
	assert.Equal(t, "Nuevo Explorador", profile.Rank.Label)
}

func TestBuildAuthorProfile_RoundsMeanRating(t *testing.T) {
	projects := []models.Project{}
	for i, rating := range []float64{5, 4, 5} {
		p := MakeProject(t, i+1, "2024-01-01")
		p.Rating = rating
		projects = append(projects, p)
	}

	profile := BuildAuthorProfile(models.Author{Name: "Ana"}, projects)

	assert.Equal(t, 4.67, profile.AvgRating)

	skills := map[string]float64{}
	for _, s := range profile.Skills {
		skills[s.Skill] = s.Value
	}
	assert.InDelta(t, 93.4, skills["Innovación"], 1e-9)
	assert.InDelta(t, 100, skills["Calidad"], 1e-9)
}

func TestAchievements(t *testing.T) {
	build := func(t *testing.T, n int, edit func(i int, p *models.Project)) []models.Project {
		projects := []models.Project{}
		for i := 0; i < n; i++ {
			p := MakeProject(t, i+1, "2024-01-01")
			if edit != nil {
				edit(i, &p)
			}
			projects = append(projects, p)
		}
		return projects
	}
	categories := []models.Category{models.CategoryTechnology, models.CategoryDevelopment, models.CategoryEngineering}
	campuses := []models.Campus{models.CampusLima, models.CampusCusco}
	ratings := []float64{4.5, 4.5, 4.49}

	tests := []struct {
		name     string
		projects func(t *testing.T) []models.Project
		expected []string
	}{
		{
			name:     "no projects",
			projects: func(t *testing.T) []models.Project { return nil },
			expected: []string{},
		},
		{
			name: "exactly 1000 views",
			projects: func(t *testing.T) []models.Project {
				return build(t, 1, func(_ int, p *models.Project) { p.Views = 1000 })
			},
			expected: []string{},
		},
		{
			name: "1001 views",
			projects: func(t *testing.T) []models.Project {
				return build(t, 1, func(_ int, p *models.Project) { p.Views = 1001 })
			},
			expected: []string{"+1000 Visualizaciones"},
		},
		{
			name:     "four projects",
			projects: func(t *testing.T) []models.Project { return build(t, 4, nil) },
			expected: []string{},
		},
		{
			name:     "five projects",
			projects: func(t *testing.T) []models.Project { return build(t, 5, nil) },
			expected: []string{"Más de 5 Proyectos"},
		},
		{
			name: "rating just under 4.5",
			projects: func(t *testing.T) []models.Project {
				return build(t, 1, func(_ int, p *models.Project) { p.Rating = 4.49 })
			},
			expected: []string{},
		},
		{
			name: "rating 4.5",
			projects: func(t *testing.T) []models.Project {
				return build(t, 1, func(_ int, p *models.Project) { p.Rating = 4.5 })
			},
			expected: []string{"Rating Promedio 4.5+"},
		},
		{
			name: "mean rating rounds up to 4.5",
			projects: func(t *testing.T) []models.Project {
				return build(t, 3, func(i int, p *models.Project) { p.Rating = ratings[i] })
			},
			expected: []string{"Rating Promedio 4.5+"},
		},
		{
			name: "two categories",
			projects: func(t *testing.T) []models.Project {
				return build(t, 2, func(i int, p *models.Project) { p.Category = categories[i] })
			},
			expected: []string{},
		},
		{
			name: "three categories",
			projects: func(t *testing.T) []models.Project {
				return build(t, 3, func(i int, p *models.Project) { p.Category = categories[i] })
			},
			expected: []string{"Multidisciplinario"},
		},
		{
			name: "two campuses",
			projects: func(t *testing.T) []models.Project {
				return build(t, 2, func(i int, p *models.Project) { p.Campus = campuses[i] })
			},
			expected: []string{"Multi-Campus"},
		},
		{
			name: "top project exactly 5000 views",
			projects: func(t *testing.T) []models.Project {
				return build(t, 1, func(_ int, p *models.Project) { p.Views = 5000 })
			},
			expected: []string{"+1000 Visualizaciones"},
		},
		{
			name: "top project 5001 views",
			projects: func(t *testing.T) []models.Project {
				return build(t, 1, func(_ int, p *models.Project) { p.Views = 5001 })
			},
			expected: []string{"+1000 Visualizaciones", "Proyecto Viral"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := BuildAuthorProfile(models.Author{Name: "Ana"}, tt.projects(t))

			titles := []string{}
			for _, a := range profile.Achievements {
				titles = append(titles, a.Title)
				assert.NotEmpty(t, a.Icon)
				assert.NotEmpty(t, a.Description)
			}
			assert.Equal(t, tt.expected, titles)
		})
	}
}
