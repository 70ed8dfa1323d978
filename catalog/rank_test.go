package catalog

import (
	"testing"

	"eureka/models"

	"github.com/stretchr/testify/assert"
)

func TestProjectRank(t *testing.T) {
	tests := []struct {
		name   string
		views  int
		rating float64
		label  string
	}{
		{"nothing", 0, 0, "Basic"},
		{"views at bronze boundary", 100, 0, "Basic"},
		{"views just over bronze", 101, 0, "Bronze"},
		{"rating bronze", 0, 2.5, "Bronze"},
		{"views silver", 501, 0, "Silver"},
		{"rating silver", 0, 3.0, "Silver"},
		{"views gold", 1001, 0, "Gold"},
		{"rating gold", 10, 3.5, "Gold"},
		{"views platinum", 2501, 1, "Platinum"},
		{"rating platinum", 0, 4.0, "Platinum"},
		{"views diamond", 5001, 1, "Diamond"},
		{"single five star rating", 0, 5, "Diamond"},
		{"rating just under diamond", 0, 4.49, "Platinum"},
		{"views exactly 5000", 5000, 0, "Platinum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := ProjectRank(tt.views, tt.rating)
			assert.Equal(t, tt.label, rank.Label)
			assert.NotEmpty(t, rank.Icon)
			assert.NotEmpty(t, rank.Tier)
		})
	}
}

func TestProjectTier_Ordered(t *testing.T) {
	assert.Less(t, int(ProjectTierFor(0, 0)), int(ProjectTierFor(200, 0)))
	assert.Less(t, int(ProjectTierFor(200, 0)), int(ProjectTierFor(6000, 0)))
	assert.Equal(t, TierDiamond, ProjectTierFor(6000, 0))
}

func TestAuthorRank(t *testing.T) {
	withStats := func(views ...int) []models.Project {
		out := []models.Project{}
		for _, v := range views {
			out = append(out, models.Project{Views: v})
		}
		return out
	}

	tests := []struct {
		name     string
		projects []models.Project
		label    string
	}{
		{"no projects", nil, "Nuevo Explorador"},
		{"few views", withStats(100, 200), "Nuevo Explorador"},
		{"active creator by views", withStats(300, 300), "Creador Activo"},
		{"advanced by views", withStats(1500, 600), "Colaborador Avanzado"},
		{"platinum by views", withStats(5001), "Innovador Platinum"},
		{"mastermind by views", withStats(6000, 4001), "Mastermind"},
		{"elite by views", withStats(20001), "Elite Mentor"},
		{"elite by rating", []models.Project{{Rating: 4.8}, {Rating: 4.7}}, "Elite Mentor"},
		{"mastermind by rating", []models.Project{{Rating: 4.5}}, "Mastermind"},
		{"mean rating across projects", []models.Project{{Rating: 5}, {Rating: 3}}, "Colaborador Avanzado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, AuthorRank(tt.projects).Label)
		})
	}
}

func TestOutstanding(t *testing.T) {
	tests := []struct {
		name     string
		views    int
		rating   float64
		expected bool
	}{
		{"both above", 2001, 4.9, true},
		{"rating exactly 4.8", 5000, 4.8, false},
		{"views exactly 2000", 2000, 5, false},
		{"high rating few views", 100, 5, false},
		{"many views low rating", 10000, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Outstanding(tt.views, tt.rating))
		})
	}
}
