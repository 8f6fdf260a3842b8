package models

import (
	"time"
)

// Course represents an entry in the course catalog.
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	CourseCode  string    `json:"courseCode" db:"course_code" example:"CS101"`
	CourseName  string    `json:"courseName" db:"course_name" example:"Introduction to Programming"`
	Description *string   `json:"description,omitempty" db:"description"`
	Credits     int       `json:"credits" db:"credits" example:"3"` // Always >= 1
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
