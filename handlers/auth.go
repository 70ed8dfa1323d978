package handlers

import (
	"net/http"

	"eureka/auth"
	"eureka/middleware"
	"eureka/models"

	"github.com/gin-gonic/gin"
)

func Login(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session, err := authenticator.Login(req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		c.JSON(http.StatusOK, models.LoginResponse{
			Token:     session.Token,
			User:      session.User,
			CreatedAt: session.CreatedAt,
		})
	}
}

func Logout(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticator.Logout(c.GetString(middleware.ContextToken)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
