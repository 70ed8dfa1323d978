package catalog

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"time"

	"eureka/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed/eureka.yaml
var embeddedSeed []byte

// Seed is the startup dataset: projects, author metadata and the local
// accounts allowed to sign in.
type Seed struct {
	Projects []models.Project
	Authors  []models.Author
	Users    []SeedUser
}

// SeedUser is a local account together with its password.
type SeedUser struct {
	models.User
	Password string
}

type seedFile struct {
	Projects []seedProject `yaml:"projects"`
	Authors  []seedAuthor  `yaml:"authors"`
	Users    []seedUser    `yaml:"users"`
}

type seedProject struct {
	ID              int            `yaml:"id"`
	Title           string         `yaml:"title"`
	Author          string         `yaml:"author"`
	Campus          string         `yaml:"campus"`
	Category        string         `yaml:"category"`
	Status          string         `yaml:"status"`
	Problem         string         `yaml:"problem"`
	Technologies    []string       `yaml:"technologies"`
	ExpectedImpact  string         `yaml:"expected_impact"`
	Description     string         `yaml:"description"`
	GithubURL       string         `yaml:"github_url"`
	Views           int            `yaml:"views"`
	Rating          float64        `yaml:"rating"`
	RatingsCount    int            `yaml:"ratings_count"`
	SubmissionDate  string         `yaml:"submission_date"`
	ApprovalHistory []seedApproval `yaml:"approval_history"`
	Comments        []seedComment  `yaml:"comments"`
}

type seedApproval struct {
	Status string `yaml:"status"`
	Date   string `yaml:"date"`
}

type seedComment struct {
	ID        string        `yaml:"id"`
	Author    string        `yaml:"author"`
	Text      string        `yaml:"text"`
	Timestamp string        `yaml:"timestamp"`
	Replies   []seedComment `yaml:"replies"`
}

type seedAuthor struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	AvatarURL   string `yaml:"avatar_url"`
}

type seedUser struct {
	Username    string `yaml:"username"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	Role        string `yaml:"role"`
	Description string `yaml:"description"`
	AvatarURL   string `yaml:"avatar_url"`
}

// LoadSeed decodes the dataset compiled into the binary.
func LoadSeed() (*Seed, error) {
	return ParseSeed(embeddedSeed)
}

// LoadSeedFile decodes a dataset from disk. An empty path falls back to the
// embedded dataset.
func LoadSeedFile(path string) (*Seed, error) {
	if path == "" {
		return LoadSeed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	log.Printf("Loading seed from %s", path)
	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML dataset.
func ParseSeed(data []byte) (*Seed, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	seed := &Seed{
		Projects: make([]models.Project, 0, len(file.Projects)),
		Authors:  make([]models.Author, 0, len(file.Authors)),
		Users:    make([]SeedUser, 0, len(file.Users)),
	}

	seen := map[int]bool{}
	for i, sp := range file.Projects {
		p, err := sp.toModel()
		if err != nil {
			return nil, fmt.Errorf("seed project %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("seed project %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true
		seed.Projects = append(seed.Projects, p)
	}

	for _, sa := range file.Authors {
		seed.Authors = append(seed.Authors, models.Author{
			Name:        sa.Name,
			Description: sa.Description,
			AvatarURL:   sa.AvatarURL,
		})
	}

	for i, su := range file.Users {
		role, ok := models.ParseRole(su.Role)
		if !ok {
			return nil, fmt.Errorf("seed user %d: %w", i, &ValidationError{Field: "role", Message: su.Role})
		}
		seed.Users = append(seed.Users, SeedUser{
			User: models.User{
				Username:    su.Username,
				Email:       su.Email,
				Role:        role,
				Description: su.Description,
				AvatarURL:   su.AvatarURL,
			},
			Password: su.Password,
		})
	}

	return seed, nil
}

// UserModels strips passwords from the seeded accounts.
func (s *Seed) UserModels() []models.User {
	out := make([]models.User, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, u.User)
	}
	return out
}

func (sp seedProject) toModel() (models.Project, error) {
	p := models.Project{
		ID:             sp.ID,
		Title:          sp.Title,
		Author:         sp.Author,
		Problem:        sp.Problem,
		Technologies:   sp.Technologies,
		ExpectedImpact: sp.ExpectedImpact,
		Description:    sp.Description,
		GithubURL:      sp.GithubURL,
		Views:          sp.Views,
		Rating:         sp.Rating,
		RatingsCount:   sp.RatingsCount,
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	var ok bool
	if p.Campus, ok = models.ParseCampus(sp.Campus); !ok {
		return p, &ValidationError{Field: "campus", Message: sp.Campus}
	}
	if p.Category, ok = models.ParseCategory(sp.Category); !ok {
		return p, &ValidationError{Field: "category", Message: sp.Category}
	}
	if p.Status, ok = models.ParseStatus(sp.Status); !ok {
		return p, &ValidationError{Field: "status", Message: sp.Status}
	}

	date, err := parseDay(sp.SubmissionDate)
	if err != nil {
		return p, &ValidationError{Field: "submission_date", Message: err.Error()}
	}
	p.SubmissionDate = date

	p.ApprovalHistory = make([]models.ApprovalEntry, 0, len(sp.ApprovalHistory))
	for _, h := range sp.ApprovalHistory {
		status, ok := models.ParseStatus(h.Status)
		if !ok {
			return p, &ValidationError{Field: "approval_history.status", Message: h.Status}
		}
		d, err := parseDay(h.Date)
		if err != nil {
			return p, &ValidationError{Field: "approval_history.date", Message: err.Error()}
		}
		p.ApprovalHistory = append(p.ApprovalHistory, models.ApprovalEntry{Status: status, Date: d})
	}

	p.Comments, err = convertComments(sp.Comments)
	if err != nil {
		return p, err
	}

	return p, nil
}

func convertComments(in []seedComment) ([]models.Comment, error) {
	out := make([]models.Comment, 0, len(in))
	for _, sc := range in {
		ts, err := time.Parse(time.RFC3339, sc.Timestamp)
		if err != nil {
			return nil, &ValidationError{Field: "comment.timestamp", Message: err.Error()}
		}
		replies, err := convertComments(sc.Replies)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Comment{
			ID:        sc.ID,
			Author:    sc.Author,
			Text:      sc.Text,
			Timestamp: ts,
			Replies:   replies,
		})
	}
	return out, nil
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(models.DateLayout, s, time.UTC)
}
