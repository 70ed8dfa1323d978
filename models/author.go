package models

import "time"

// Author is the display metadata for a project author.
type Author struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

// User is a local account that can sign in.
type User struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Description string `json:"-"`
	AvatarURL   string `json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
