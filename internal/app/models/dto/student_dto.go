package dto

import "github.com/emre/studentms/internal/app/models"

// CreateStudentRequest carries the fields for a new student profile plus
// the initial password of the login account created alongside it.
type CreateStudentRequest struct {
	StudentUniqueID string  `json:"studentUniqueId" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	DateOfBirth     *string `json:"dateOfBirth"` // ISO date, e.g. 2004-09-15
	Address         *string `json:"address"`
	ContactNumber   *string `json:"contactNumber"`
	Password        string  `json:"password" binding:"required"`
}

// UpdateStudentRequest is a partial update: a nil field is left
// untouched, a present empty string explicitly clears the field.
type UpdateStudentRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
	Password      *string `json:"password"` // Re-hashes the linked login account when present
}

// StudentResponse wraps a mutation result in the `{msg, student}` shape
type StudentResponse struct {
	Msg     string          `json:"msg"`
	Student *models.Student `json:"student"`
}
