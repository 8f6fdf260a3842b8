package dto

import "github.com/emre/studentms/internal/app/models"

// RegisterRequest represents a user registration request. Role defaults
// to student when omitted.
type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Role     models.RoleType `json:"role"`
}

// LoginRequest represents login credentials. The username field also
// accepts a student's public unique ID.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the caller's identity
type LoginResponse struct {
	Token     string          `json:"token"`
	Role      models.RoleType `json:"role" example:"student"`
	UserID    int64           `json:"userId" example:"1"`
	StudentID *int64          `json:"studentId,omitempty" example:"3"`
}
