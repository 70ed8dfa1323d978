package catalog

import (
	"sort"

	"eureka/models"
)

// predicate reports whether a project should stay in a listing.
type predicate func(p *models.Project) bool

// FilterBuilder collects listing conditions. All conditions must hold for a
// project to be kept.
type FilterBuilder struct {
	conditions []predicate
}

func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{
		conditions: []predicate{},
	}
}

// AddSearch keeps projects matching the free-text term. An empty term adds
// no condition.
func (fb *FilterBuilder) AddSearch(term string) {
	m, ok := NewSearchMatcher(term)
	if !ok {
		return
	}
	fb.conditions = append(fb.conditions, m.Match)
}

// AddCategory keeps projects of exactly this category. The zero category
// adds no condition.
func (fb *FilterBuilder) AddCategory(c models.Category) {
	if !c.Valid() {
		return
	}
	fb.conditions = append(fb.conditions, func(p *models.Project) bool {
		return p.Category == c
	})
}

func (fb *FilterBuilder) AddCampus(c models.Campus) {
	if !c.Valid() {
		return
	}
	fb.conditions = append(fb.conditions, func(p *models.Project) bool {
		return p.Campus == c
	})
}

func (fb *FilterBuilder) AddPending() {
	fb.conditions = append(fb.conditions, func(p *models.Project) bool {
		return p.Status.Pending()
	})
}

// Len is the number of conditions collected so far.
func (fb *FilterBuilder) Len() int {
	return len(fb.conditions)
}

func (fb *FilterBuilder) match(p *models.Project) bool {
	for _, cond := range fb.conditions {
		if !cond(p) {
			return false
		}
	}
	return true
}

// Apply returns the matching projects in their original relative order.
// The input slice is not modified. The result is never nil.
func (fb *FilterBuilder) Apply(projects []models.Project) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for i := range projects {
		if fb.match(&projects[i]) {
			out = append(out, projects[i])
		}
	}
	return out
}

// Filter derives the visible listing for a filter selection: search,
// category and campus combined with AND, newest submission first. Projects
// with the same submission date keep their input order.
func Filter(projects []models.Project, spec models.FilterSpec) []models.Project {
	fb := NewFilterBuilder()
	fb.AddSearch(spec.Search)
	fb.AddCategory(spec.Category)
	fb.AddCampus(spec.Campus)

	out := fb.Apply(projects)
	sortBySubmission(out, true)
	return out
}

// PendingQueue returns projects still waiting for review, oldest first.
func PendingQueue(projects []models.Project) []models.Project {
	fb := NewFilterBuilder()
	fb.AddPending()

	out := fb.Apply(projects)
	sortBySubmission(out, false)
	return out
}

// Helper functions

func sortBySubmission(projects []models.Project, newestFirst bool) {
	sort.SliceStable(projects, func(i, j int) bool {
		if newestFirst {
			return projects[i].SubmissionDate.After(projects[j].SubmissionDate)
		}
		return projects[i].SubmissionDate.Before(projects[j].SubmissionDate)
	})
}
