package catalog

import (
	"strings"

	"eureka/models"
)

// SearchMatcher matches a free-text term against the searchable fields of a
// project: title, author and technology tags. Matching is a case-insensitive
// substring test.
type SearchMatcher struct {
	term string
}

// NewSearchMatcher lower-cases the term. It returns false for an empty term,
// which means the search is disabled. The term is not trimmed.
func NewSearchMatcher(term string) (*SearchMatcher, bool) {
	if term == "" {
		return nil, false
	}
	return &SearchMatcher{term: strings.ToLower(term)}, true
}

// Term returns the normalized search term.
func (m *SearchMatcher) Term() string {
	return m.term
}

func (m *SearchMatcher) Match(p *models.Project) bool {
	if m.contains(p.Title) || m.contains(p.Author) {
		return true
	}
	for _, tech := range p.Technologies {
		if m.contains(tech) {
			return true
		}
	}
	return false
}

func (m *SearchMatcher) contains(s string) bool {
	return strings.Contains(strings.ToLower(s), m.term)
}
