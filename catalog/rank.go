package catalog

import "eureka/models"

// ProjectTier is a step on the project rank ladder, lowest first.
type ProjectTier int

const (
	TierBasic ProjectTier = iota
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
	TierDiamond
)

// rung is one threshold of a rank ladder. Either condition alone qualifies.
type rung[T any] struct {
	tier      T
	minViews  int // exclusive
	minRating float64
}

// Ladders are evaluated top-down; the first matching rung wins.
var projectLadder = []rung[ProjectTier]{
	{TierDiamond, 5000, 4.5},
	{TierPlatinum, 2500, 4.0},
	{TierGold, 1000, 3.5},
	{TierSilver, 500, 3.0},
	{TierBronze, 100, 2.5},
}

func (t ProjectTier) String() string {
	switch t {
	case TierDiamond:
		return "diamond"
	case TierPlatinum:
		return "platinum"
	case TierGold:
		return "gold"
	case TierSilver:
		return "silver"
	case TierBronze:
		return "bronze"
	case TierBasic:
		return "basic"
	}
	return ""
}

func (t ProjectTier) Rank() models.Rank {
	r := models.Rank{Tier: t.String()}
	switch t {
	case TierDiamond:
		r.Label, r.Icon = "Diamond", "💎"
	case TierPlatinum:
		r.Label, r.Icon = "Platinum", "🏆"
	case TierGold:
		r.Label, r.Icon = "Gold", "🥇"
	case TierSilver:
		r.Label, r.Icon = "Silver", "🥈"
	case TierBronze:
		r.Label, r.Icon = "Bronze", "🥉"
	case TierBasic:
		r.Label, r.Icon = "Basic", "📌"
	}
	return r
}

// ProjectTierFor places a project on the ladder by its views and rating.
func ProjectTierFor(views int, rating float64) ProjectTier {
	return climb(projectLadder, TierBasic, views, rating)
}

func ProjectRank(views int, rating float64) models.Rank {
	return ProjectTierFor(views, rating).Rank()
}

// Outstanding reports whether a project is highlighted in listings. Both
// bounds are exclusive.
func Outstanding(views int, rating float64) bool {
	return rating > 4.8 && views > 2000
}

// AuthorTier is a step on the author rank ladder, lowest first.
type AuthorTier int

const (
	TierNewExplorer AuthorTier = iota
	TierActiveCreator
	TierAdvancedCollaborator
	TierPlatinumInnovator
	TierMastermind
	TierEliteMentor
)

var authorLadder = []rung[AuthorTier]{
	{TierEliteMentor, 20000, 4.7},
	{TierMastermind, 10000, 4.5},
	{TierPlatinumInnovator, 5000, 4.3},
	{TierAdvancedCollaborator, 2000, 4.0},
	{TierActiveCreator, 500, 3.5},
}

func (t AuthorTier) String() string {
	switch t {
	case TierEliteMentor:
		return "elite_mentor"
	case TierMastermind:
		return "mastermind"
	case TierPlatinumInnovator:
		return "platinum_innovator"
	case TierAdvancedCollaborator:
		return "advanced_collaborator"
	case TierActiveCreator:
		return "active_creator"
	case TierNewExplorer:
		return "new_explorer"
	}
	return ""
}

func (t AuthorTier) Rank() models.Rank {
	r := models.Rank{Tier: t.String()}
	switch t {
	case TierEliteMentor:
		r.Label, r.Icon = "Elite Mentor", "👑"
	case TierMastermind:
		r.Label, r.Icon = "Mastermind", "🧠"
	case TierPlatinumInnovator:
		r.Label, r.Icon = "Innovador Platinum", "⚡"
	case TierAdvancedCollaborator:
		r.Label, r.Icon = "Colaborador Avanzado", "🚀"
	case TierActiveCreator:
		r.Label, r.Icon = "Creador Activo", "🔥"
	case TierNewExplorer:
		r.Label, r.Icon = "Nuevo Explorador", "🌱"
	}
	return r
}

// AuthorTierFor ranks an author by total views and mean rating across all
// of their projects.
func AuthorTierFor(projects []models.Project) AuthorTier {
	return climb(authorLadder, TierNewExplorer, totalViews(projects), meanRating(projects))
}

func AuthorRank(projects []models.Project) models.Rank {
	return AuthorTierFor(projects).Rank()
}

func climb[T any](ladder []rung[T], floor T, views int, rating float64) T {
	for _, r := range ladder {
		if views > r.minViews || rating >= r.minRating {
			return r.tier
		}
	}
	return floor
}
