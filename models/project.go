package models

import (
	"time"
)

// DateLayout is the day-granularity format used for submission and
// approval dates.
const DateLayout = "2006-01-02"

// Project is one catalogued academic submission. ID is assigned when the
// project is created and never changes.
type Project struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Campus          Campus          `json:"campus"`
	Category        Category        `json:"category"`
	Status          Status          `json:"status"`
	Problem         string          `json:"problem"`
	Technologies    []string        `json:"technologies"`
	ExpectedImpact  string          `json:"expected_impact"`
	Description     string          `json:"description"`
	GithubURL       string          `json:"github_url"`
	Views           int             `json:"views"`
	Rating          float64         `json:"rating"`
	RatingsCount    int             `json:"ratings_count"`
	SubmissionDate  time.Time       `json:"submission_date"`
	ApprovalHistory []ApprovalEntry `json:"approval_history"`
	Comments        []Comment       `json:"comments"`
}

// ApprovalEntry records one status transition. Date is truncated to the day.
type ApprovalEntry struct {
	Status Status    `json:"status"`
	Date   time.Time `json:"date"`
}

// CreateProjectRequest is the payload for submitting a new project.
// Author falls back to the signed-in user when empty.
type CreateProjectRequest struct {
	Title          string   `json:"title" binding:"required,min=3,max=255"`
	Author         string   `json:"author"`
	Campus         Campus   `json:"campus" binding:"required"`
	Category       Category `json:"category" binding:"required"`
	Problem        string   `json:"problem" binding:"required"`
	Technologies   []string `json:"technologies"`
	ExpectedImpact string   `json:"expected_impact"`
	Description    string   `json:"description" binding:"required"`
	GithubURL      string   `json:"github_url" binding:"omitempty,url"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

type RateProjectRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// FilterParams are the raw query parameters of a project listing.
// Empty values and "all" disable the corresponding filter.
type FilterParams struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Campus   string `form:"campus"`
}

// FilterSpec is the parsed, transient selection that drives a listing.
// A zero Category or Campus means no filter on that field.
type FilterSpec struct {
	Search   string
	Category Category
	Campus   Campus
}

// Spec converts raw parameters into a FilterSpec. Unknown category or
// campus values are treated as no filter.
func (p FilterParams) Spec() FilterSpec {
	spec := FilterSpec{Search: p.Search}
	if c, ok := ParseCategory(p.Category); ok {
		spec.Category = c
	}
	if c, ok := ParseCampus(p.Campus); ok {
		spec.Campus = c
	}
	return spec
}

// ProjectsResponse is the standard response format for project listings.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}

// ProjectDetail is a project together with its computed rank.
type ProjectDetail struct {
	Project
	Rank        Rank `json:"rank"`
	Outstanding bool `json:"outstanding"`
}
