package catalog

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"eureka/models"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrCommentParentNotFound = errors.New("parent comment not found")
	ErrInvalidScore          = errors.New("score must be between 1 and 5")
	ErrAuthorNotFound        = errors.New("author not found")
)

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Catalog holds the authoritative project list in memory. Every update
// builds a new list and swaps it in, so snapshots handed out earlier are
// never modified.
type Catalog struct {
	mu       sync.RWMutex
	projects []models.Project
	authors  *AuthorDirectory
	now      func() time.Time
}

type Option func(*Catalog)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// New creates a catalog seeded with projects. The slice is copied.
func New(projects []models.Project, authors *AuthorDirectory, opts ...Option) *Catalog {
	seeded := make([]models.Project, len(projects))
	copy(seeded, projects)

	if authors == nil {
		authors = NewAuthorDirectory(nil, nil)
	}

	c := &Catalog{
		projects: seeded,
		authors:  authors,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	log.Printf("Catalog loaded: projects=%d authors=%d", len(seeded), authors.Len())
	return c
}

// Snapshot returns the current project list. Callers must treat it as
// read-only.
func (c *Catalog) Snapshot() []models.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projects
}

func (c *Catalog) Authors() *AuthorDirectory {
	return c.authors
}

// update replaces the project with the given ID by fn's result.
func (c *Catalog) update(id int, fn func(p models.Project) (models.Project, error)) (*models.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := indexOf(c.projects, id)
	if idx < 0 {
		return nil, ErrProjectNotFound
	}

	updated, err := fn(c.projects[idx])
	if err != nil {
		return nil, err
	}

	next := make([]models.Project, len(c.projects))
	copy(next, c.projects)
	next[idx] = updated
	c.projects = next

	return &updated, nil
}

func (c *Catalog) today() time.Time {
	return truncateDay(c.now())
}

// Helper functions

func indexOf(projects []models.Project, id int) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return truncateDay(a).Equal(truncateDay(b))
}

func cleanTechnologies(techs []string) []string {
	out := []string{}
	for _, t := range techs {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
