package models

import (
	"time"
)

// User defines the login account model based on the 'users' table.
// Student accounts carry a back-reference to their owning student record.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                       // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"S2024001"`    // Login username (students log in with their student ID)
	Password  string    `json:"-" db:"password"`                              // Hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"student"`             // User's role (admin or student)
	StudentID *int64    `json:"studentId,omitempty" db:"student_id"`          // Linked student record, only for student accounts
	CreatedAt time.Time `json:"createdAt" db:"created_at"`                    // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`                    // Timestamp when the user was last updated
}
