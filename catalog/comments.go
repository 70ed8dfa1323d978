package catalog

import (
	"fmt"
	"time"

	"eureka/models"

	"github.com/google/uuid"
)

// NewComment builds a comment ready for insertion. IDs are time-ordered
// UUIDs, unique for the life of the process.
func NewComment(author, text string, now time.Time) models.Comment {
	return models.Comment{
		ID:        generateCommentID(),
		Author:    author,
		Text:      text,
		Timestamp: now,
		Replies:   []models.Comment{},
	}
}

// AddComment returns a new forest with c inserted. An empty parentID appends
// c to the top level. Otherwise c becomes the last reply of the first node,
// in depth-first pre-order, whose ID equals parentID. When no node matches,
// the forest is returned unchanged.
//
// The input forest is never modified. Nodes on the path from the root to
// the parent are copied; all other nodes are shared.
func AddComment(forest []models.Comment, c models.Comment, parentID string) []models.Comment {
	out, _ := InsertComment(forest, c, parentID)
	return out
}

// InsertComment is AddComment that also reports whether the parent was found.
// A top-level insert always reports true.
func InsertComment(forest []models.Comment, c models.Comment, parentID string) ([]models.Comment, bool) {
	if parentID == "" {
		out := make([]models.Comment, len(forest), len(forest)+1)
		copy(out, forest)
		return append(out, c), true
	}

	return insertReply(forest, c, parentID)
}

func insertReply(forest []models.Comment, c models.Comment, parentID string) ([]models.Comment, bool) {
	for i := range forest {
		node := forest[i]

		if node.ID == parentID {
			replies := make([]models.Comment, len(node.Replies), len(node.Replies)+1)
			copy(replies, node.Replies)
			node.Replies = append(replies, c)
			return replaceAt(forest, i, node), true
		}

		if len(node.Replies) == 0 {
			continue
		}
		if replies, ok := insertReply(node.Replies, c, parentID); ok {
			node.Replies = replies
			return replaceAt(forest, i, node), true
		}
	}
	return forest, false
}

// FindComment returns the first comment with the given ID, searching the
// forest depth-first.
func FindComment(forest []models.Comment, id string) (*models.Comment, bool) {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i], true
		}
		if c, ok := FindComment(forest[i].Replies, id); ok {
			return c, true
		}
	}
	return nil, false
}

// CountComments counts every node in the forest, replies included.
func CountComments(forest []models.Comment) int {
	n := len(forest)
	for i := range forest {
		n += CountComments(forest[i].Replies)
	}
	return n
}

// Helper functions

func replaceAt(forest []models.Comment, i int, node models.Comment) []models.Comment {
	out := make([]models.Comment, len(forest))
	copy(out, forest)
	out[i] = node
	return out
}

func generateCommentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("c%s", id.String())
}
