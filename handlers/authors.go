package handlers

import (
	"net/http"

	"eureka/catalog"

	"github.com/gin-gonic/gin"
)

func ListAuthors(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		authors := cat.Authors().List()
		c.JSON(http.StatusOK, gin.H{
			"authors": authors,
			"total":   len(authors),
		})
	}
}

func GetAuthorProfile(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		profile, err := cat.AuthorProfile(ctx, c.Param("name"))
		if err != nil {
			respondError(c, "get author", err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}
