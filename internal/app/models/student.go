package models

import (
	"time"
)

// Student defines the student profile model based on the 'students' table.
// A student owns exactly one login account (1:1 with users, mutual refs).
type Student struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	StudentUniqueID string     `json:"studentUniqueId" db:"student_unique_id" example:"S2024001"` // Public ID assigned by the admin, doubles as the login username
	Name            string     `json:"name" db:"name" example:"Jane Doe"`
	Email           string     `json:"email" db:"email" example:"jane@example.com"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Address         *string    `json:"address,omitempty" db:"address"`
	ContactNumber   *string    `json:"contactNumber,omitempty" db:"contact_number"`
	UserID          *int64     `json:"userId,omitempty" db:"user_id"` // Linked login account
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}
