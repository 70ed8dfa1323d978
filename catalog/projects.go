package catalog

import (
	"context"
	"log"
	"strings"
	"time"

	"eureka/models"
)

// ListProjects runs the filter engine over the current list.
func (c *Catalog) ListProjects(ctx context.Context, spec models.FilterSpec) ([]models.Project, error) {
	start := time.Now()
	defer func() {
		log.Printf("ListProjects: duration=%v filters=[search=%q category=%s campus=%s]",
			time.Since(start), spec.Search, spec.Category, spec.Campus)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Filter(c.Snapshot(), spec), nil
}

// PendingProjects returns the review queue, oldest submission first.
func (c *Catalog) PendingProjects(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return PendingQueue(c.Snapshot()), nil
}

func (c *Catalog) GetProject(ctx context.Context, id int) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projects := c.Snapshot()
	idx := indexOf(projects, id)
	if idx < 0 {
		return nil, ErrProjectNotFound
	}
	project := projects[idx]
	return &project, nil
}

// ProjectsByAuthor returns every project whose author matches name exactly.
func (c *Catalog) ProjectsByAuthor(ctx context.Context, name string) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []models.Project{}
	for _, p := range c.Snapshot() {
		if p.Author == name {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreateProject submits a new project. It gets the next free ID, starts in
// the uploaded state with a single history entry, and is placed first in
// the list.
func (c *Catalog) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	today := c.today()

	c.mu.Lock()
	defer c.mu.Unlock()

	project := models.Project{
		ID:             nextID(c.projects),
		Title:          strings.TrimSpace(req.Title),
		Author:         strings.TrimSpace(req.Author),
		Campus:         req.Campus,
		Category:       req.Category,
		Status:         models.StatusUploaded,
		Problem:        req.Problem,
		Technologies:   cleanTechnologies(req.Technologies),
		ExpectedImpact: req.ExpectedImpact,
		Description:    req.Description,
		GithubURL:      req.GithubURL,
		SubmissionDate: today,
		ApprovalHistory: []models.ApprovalEntry{
			{Status: models.StatusUploaded, Date: today},
		},
		Comments: []models.Comment{},
	}

	next := make([]models.Project, 0, len(c.projects)+1)
	next = append(next, project)
	next = append(next, c.projects...)
	c.projects = next

	log.Printf("Created project: %s (ID: %d)", project.Title, project.ID)
	return &project, nil
}

// UpdateStatus moves a project to a new lifecycle status. Setting the
// current status again changes nothing. A history entry is appended unless
// one with the same status and date already exists.
func (c *Catalog) UpdateStatus(ctx context.Context, id int, status models.Status) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: "unknown status"}
	}

	today := c.today()

	project, err := c.update(id, func(p models.Project) (models.Project, error) {
		return applyStatus(p, status, today), nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("UpdateStatus: project=%d status=%s", id, status)
	return project, nil
}

// RateProject folds a new 1-5 score into the running mean rating.
func (c *Catalog) RateProject(ctx context.Context, id int, score int) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	return c.update(id, func(p models.Project) (models.Project, error) {
		return applyRating(p, score), nil
	})
}

// AddComment posts a comment on a project, as a reply when parentID is set.
// If the parent does not exist the project is left unchanged and
// ErrCommentParentNotFound is returned.
func (c *Catalog) AddComment(ctx context.Context, id int, author, text, parentID string) (*models.Project, *models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil, &ValidationError{Field: "text", Message: "must not be empty"}
	}

	comment := NewComment(author, text, c.now().UTC())

	project, err := c.update(id, func(p models.Project) (models.Project, error) {
		forest, ok := InsertComment(p.Comments, comment, parentID)
		if !ok {
			return p, ErrCommentParentNotFound
		}
		p.Comments = forest
		return p, nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("AddComment: project=%d comment=%s parent=%q", id, comment.ID, parentID)
	return project, &comment, nil
}

// Dashboard aggregates the current list for the admin view.
func (c *Catalog) Dashboard(ctx context.Context) (models.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Dashboard{}, err
	}
	return DashboardStats(c.Snapshot()), nil
}

// Helper functions

func nextID(projects []models.Project) int {
	highest := 0
	for i := range projects {
		if projects[i].ID > highest {
			highest = projects[i].ID
		}
	}
	return highest + 1
}

func applyStatus(p models.Project, status models.Status, today time.Time) models.Project {
	if p.Status == status {
		return p
	}
	p.Status = status

	for _, h := range p.ApprovalHistory {
		if h.Status == status && sameDay(h.Date, today) {
			return p
		}
	}

	history := make([]models.ApprovalEntry, len(p.ApprovalHistory), len(p.ApprovalHistory)+1)
	copy(history, p.ApprovalHistory)
	p.ApprovalHistory = append(history, models.ApprovalEntry{Status: status, Date: today})
	return p
}

func applyRating(p models.Project, score int) models.Project {
	total := p.Rating * float64(p.RatingsCount)
	p.RatingsCount++
	p.Rating = (total + float64(score)) / float64(p.RatingsCount)
	return p
}

func validateCreate(req models.CreateProjectRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if strings.TrimSpace(req.Author) == "" {
		return &ValidationError{Field: "author", Message: "must not be empty"}
	}
	if !req.Campus.Valid() {
		return &ValidationError{Field: "campus", Message: "unknown campus"}
	}
	if !req.Category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	return nil
}
