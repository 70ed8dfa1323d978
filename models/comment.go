package models

import "time"

// Comment is a node in a project's comment forest. Replies are nested
// comments of the same shape, to any depth.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Replies   []Comment `json:"replies"`
}

// CreateCommentRequest posts a top-level comment, or a reply when ParentID is set.
type CreateCommentRequest struct {
	Text     string `json:"text" binding:"required,max=2000"`
	ParentID string `json:"parent_id"`
}
