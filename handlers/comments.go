package handlers

import (
	"net/http"

	"eureka/catalog"
	"eureka/middleware"
	"eureka/models"

	"github.com/gin-gonic/gin"
)

// AddComment posts a comment as the signed-in user. The response carries
// the new comment and the project's updated forest.
func AddComment(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseProjectID(c)
		if !ok {
			return
		}

		var req models.CreateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in to comment"})
			return
		}

		ctx := c.Request.Context()
		project, comment, err := cat.AddComment(ctx, projectID, user.Username, req.Text, req.ParentID)
		if err != nil {
			respondError(c, "add comment", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"comment":  comment,
			"comments": project.Comments,
		})
	}
}
