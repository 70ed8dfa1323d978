package handlers

import (
	"eureka/auth"
	"eureka/catalog"
	"eureka/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a gin engine with the default logger and
// recovery middleware.
func NewRouter(cat *catalog.Catalog, authenticator *auth.Authenticator) *gin.Engine {
	r := gin.Default()

	r.GET("/health", HealthCheck)
	r.POST("/auth/login", Login(authenticator))

	api := r.Group("/")
	api.Use(middleware.AuthRequired(authenticator))
	{
		api.POST("/auth/logout", Logout(authenticator))

		api.GET("/projects", ListProjects(cat))
		api.POST("/projects", CreateProject(cat))
		api.GET("/projects/:id", GetProject(cat))
		api.POST("/projects/:id/ratings", RateProject(cat))
		api.POST("/projects/:id/comments", AddComment(cat))

		api.GET("/authors", ListAuthors(cat))
		api.GET("/authors/:name", GetAuthorProfile(cat))
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/projects", ListProjects(cat))
		admin.GET("/projects/pending", ListPendingProjects(cat))
		admin.PUT("/projects/:id/status", UpdateProjectStatus(cat))
		admin.GET("/dashboard", Dashboard(cat))
	}

	return r
}
