package handlers

import (
	"log"
	"net/http"

	"eureka/catalog"
	"eureka/middleware"
	"eureka/models"

	"github.com/gin-gonic/gin"
)

// ListProjects serves both the browsing list and the admin management list.
func ListProjects(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.FilterParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		projects, err := cat.ListProjects(ctx, params.Spec())
		if err != nil {
			respondError(c, "list projects", err)
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

func ListPendingProjects(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := cat.PendingProjects(ctx)
		if err != nil {
			respondError(c, "list pending projects", err)
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

func GetProject(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseProjectID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		project, err := cat.GetProject(ctx, projectID)
		if err != nil {
			respondError(c, "get project", err)
			return
		}

		c.JSON(http.StatusOK, models.ProjectDetail{
			Project:     *project,
			Rank:        catalog.ProjectRank(project.Views, project.Rating),
			Outstanding: catalog.Outstanding(project.Views, project.Rating),
		})
	}
}

func CreateProject(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Bind error: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Author == "" {
			if user, ok := middleware.CurrentUser(c); ok {
				req.Author = user.Username
			}
		}

		ctx := c.Request.Context()
		project, err := cat.CreateProject(ctx, req)
		if err != nil {
			respondError(c, "create project", err)
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

func UpdateProjectStatus(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseProjectID(c)
		if !ok {
			return
		}

		var req models.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := cat.UpdateStatus(ctx, projectID, req.Status)
		if err != nil {
			respondError(c, "update status", err)
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func RateProject(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseProjectID(c)
		if !ok {
			return
		}

		var req models.RateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := cat.RateProject(ctx, projectID, req.Score)
		if err != nil {
			respondError(c, "rate project", err)
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func Dashboard(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := cat.Dashboard(c.Request.Context())
		if err != nil {
			respondError(c, "build dashboard", err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
