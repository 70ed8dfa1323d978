package models

// Rank is a tier on a rank ladder.
type Rank struct {
	Tier  string `json:"tier"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// CountEntry is one slice of a grouped count, e.g. projects per campus.
type CountEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Short string `json:"short"`
	Value int    `json:"value"`
}

// MonthBucket counts submissions in one calendar month.
type MonthBucket struct {
	Key   string `json:"key"` // YYYY-MM
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Dashboard aggregates the whole catalogue for the admin view.
type Dashboard struct {
	TotalProjects       int           `json:"total_projects"`
	PendingProjects     int           `json:"pending_projects"`
	ByStatus            []CountEntry  `json:"by_status"`
	ByCampus            []CountEntry  `json:"by_campus"`
	ByCategory          []CountEntry  `json:"by_category"`
	AvgApprovalDays     int           `json:"avg_approval_days"`
	SubmissionsByMonth  []MonthBucket `json:"submissions_by_month"`
	MaxMonthSubmissions int           `json:"max_month_submissions"`
}

// Achievement is a badge shown on an author profile.
type Achievement struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Skill struct {
	Skill string  `json:"skill"`
	Value float64 `json:"value"`
}

// AuthorProfile is an author plus aggregate statistics over their projects.
type AuthorProfile struct {
	Author       Author        `json:"author"`
	Projects     []Project     `json:"projects"`
	TotalViews   int           `json:"total_views"`
	AvgRating    float64       `json:"avg_rating"`
	Rank         Rank          `json:"rank"`
	TopProject   *Project      `json:"top_project,omitempty"`
	MostViewed   []Project     `json:"most_viewed"`
	ByCategory   []CountEntry  `json:"by_category"`
	ByCampus     []CountEntry  `json:"by_campus"`
	Skills       []Skill       `json:"skills"`
	Achievements []Achievement `json:"achievements"`
}
