package catalog

import (
	"math"
	"sort"
	"time"

	"eureka/models"
)

var spanishMonths = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sept", "Oct", "Nov", "Dic",
}

// DashboardStats aggregates the catalogue for the admin dashboard.
func DashboardStats(projects []models.Project) models.Dashboard {
	d := models.Dashboard{
		TotalProjects:      len(projects),
		ByStatus:           countByStatus(projects),
		ByCampus:           countByCampus(projects),
		ByCategory:         countByCategory(projects),
		AvgApprovalDays:    AvgApprovalDays(projects),
		SubmissionsByMonth: SubmissionsByMonth(projects),
	}

	for i := range projects {
		if projects[i].Status.Pending() {
			d.PendingProjects++
		}
	}

	d.MaxMonthSubmissions = 1
	for _, b := range d.SubmissionsByMonth {
		if b.Value > d.MaxMonthSubmissions {
			d.MaxMonthSubmissions = b.Value
		}
	}

	return d
}

// AvgApprovalDays is the mean number of days between a project's first
// history entry and its approval, over approved projects with at least two
// history entries. Each span is rounded up to whole days and the mean is
// rounded to the nearest day. It returns 0 when no project qualifies.
func AvgApprovalDays(projects []models.Project) int {
	approved := 0
	totalDays := 0

	for i := range projects {
		p := &projects[i]
		if p.Status != models.StatusApproved || len(p.ApprovalHistory) < 2 {
			continue
		}
		approved++

		submitted := p.ApprovalHistory[0].Date
		for _, h := range p.ApprovalHistory {
			if h.Status == models.StatusApproved {
				totalDays += ceilDays(h.Date.Sub(submitted))
				break
			}
		}
	}

	if approved == 0 {
		return 0
	}
	return int(math.Round(float64(totalDays) / float64(approved)))
}

// SubmissionsByMonth buckets projects by calendar month of submission, in
// chronological order. Months without submissions are omitted.
func SubmissionsByMonth(projects []models.Project) []models.MonthBucket {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)
	sortBySubmission(sorted, false)

	buckets := []models.MonthBucket{}
	index := map[string]int{}

	for i := range sorted {
		date := sorted[i].SubmissionDate.UTC()
		key := date.Format("2006-01")

		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, models.MonthBucket{Key: key, Label: monthLabel(date)})
		}
		buckets[pos].Value++
	}

	return buckets
}

type achievementRule struct {
	achievement models.Achievement
	earned      func(p *models.AuthorProfile) bool
}

var achievementRules = []achievementRule{
	{
		models.Achievement{Icon: "🥇", Title: "+1000 Visualizaciones", Description: "Has alcanzado más de mil vistas"},
		func(p *models.AuthorProfile) bool { return p.TotalViews > 1000 },
	},
	{
		models.Achievement{Icon: "🚀", Title: "Más de 5 Proyectos", Description: "Creador activo y consistente"},
		func(p *models.AuthorProfile) bool { return len(p.Projects) >= 5 },
	},
	{
		models.Achievement{Icon: "💡", Title: "Rating Promedio 4.5+", Description: "Excelencia en calidad"},
		func(p *models.AuthorProfile) bool { return p.AvgRating >= 4.5 },
	},
	{
		models.Achievement{Icon: "🎨", Title: "Multidisciplinario", Description: "Proyectos en múltiples áreas"},
		func(p *models.AuthorProfile) bool { return len(p.ByCategory) >= 3 },
	},
	{
		models.Achievement{Icon: "🌍", Title: "Multi-Campus", Description: "Impacto en varios campus"},
		func(p *models.AuthorProfile) bool { return len(p.ByCampus) >= 2 },
	},
	{
		models.Achievement{Icon: "🔥", Title: "Proyecto Viral", Description: "Más de 5000 vistas en un proyecto"},
		func(p *models.AuthorProfile) bool { return p.TopProject != nil && p.TopProject.Views > 5000 },
	},
}

// Achievements lists the badges a profile has earned, in display order.
func Achievements(p *models.AuthorProfile) []models.Achievement {
	out := []models.Achievement{}
	for _, r := range achievementRules {
		if r.earned(p) {
			out = append(out, r.achievement)
		}
	}
	return out
}

// BuildAuthorProfile aggregates an author's projects for the profile view.
// The mean rating is rounded to two decimals before it feeds the skills
// radar and the achievements.
func BuildAuthorProfile(author models.Author, projects []models.Project) models.AuthorProfile {
	avg := roundTo(meanRating(projects), 2)
	views := totalViews(projects)

	byViews := make([]models.Project, len(projects))
	copy(byViews, projects)
	sort.SliceStable(byViews, func(i, j int) bool {
		return byViews[i].Views > byViews[j].Views
	})

	profile := models.AuthorProfile{
		Author:     author,
		Projects:   projects,
		TotalViews: views,
		AvgRating:  avg,
		Rank:       AuthorRank(projects),
		MostViewed: byViews[:min(5, len(byViews))],
		ByCategory: countByCategory(projects),
		ByCampus:   countByCampus(projects),
	}
	if len(byViews) > 0 {
		top := byViews[0]
		profile.TopProject = &top
	}

	profile.Skills = []models.Skill{
		{Skill: "Innovación", Value: math.Min(100, avg*20)},
		{Skill: "Popularidad", Value: math.Min(100, float64(views)/100)},
		{Skill: "Consistencia", Value: math.Min(100, float64(len(projects)*15))},
		{Skill: "Calidad", Value: math.Min(100, avg*22)},
		{Skill: "Diversidad", Value: math.Min(100, float64(len(profile.ByCategory)*25))},
	}
	profile.Achievements = Achievements(&profile)

	return profile
}

// Helper functions

func totalViews(projects []models.Project) int {
	total := 0
	for i := range projects {
		total += projects[i].Views
	}
	return total
}

func meanRating(projects []models.Project) float64 {
	if len(projects) == 0 {
		return 0
	}
	var sum float64
	for i := range projects {
		sum += projects[i].Rating
	}
	return sum / float64(len(projects))
}

func countByStatus(projects []models.Project) []models.CountEntry {
	out := []models.CountEntry{}
	for _, s := range models.Statuses {
		n := 0
		for i := range projects {
			if projects[i].Status == s {
				n++
			}
		}
		out = append(out, models.CountEntry{Key: s.String(), Label: s.Label(), Short: s.Label(), Value: n})
	}
	return out
}

// countByCampus omits campuses without projects.
func countByCampus(projects []models.Project) []models.CountEntry {
	out := []models.CountEntry{}
	for _, c := range models.Campuses {
		n := 0
		for i := range projects {
			if projects[i].Campus == c {
				n++
			}
		}
		if n > 0 {
			out = append(out, models.CountEntry{Key: c.String(), Label: c.Label(), Short: c.ShortLabel(), Value: n})
		}
	}
	return out
}

func countByCategory(projects []models.Project) []models.CountEntry {
	out := []models.CountEntry{}
	for _, c := range models.Categories {
		n := 0
		for i := range projects {
			if projects[i].Category == c {
				n++
			}
		}
		if n > 0 {
			out = append(out, models.CountEntry{Key: c.String(), Label: c.Label(), Short: c.ShortLabel(), Value: n})
		}
	}
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func ceilDays(d time.Duration) int {
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

func monthLabel(t time.Time) string {
	return spanishMonths[t.Month()-1] + "-" + t.Format("06")
}
