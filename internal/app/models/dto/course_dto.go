package dto

import "github.com/emre/studentms/internal/app/models"

// CreateCourseRequest carries the fields for a new catalog entry
type CreateCourseRequest struct {
	CourseCode  string  `json:"courseCode" binding:"required"`
	CourseName  string  `json:"courseName" binding:"required"`
	Description *string `json:"description"`
	Credits     int     `json:"credits" binding:"required,min=1"`
}

// UpdateCourseRequest is a partial update; nil fields stay untouched
type UpdateCourseRequest struct {
	CourseName  *string `json:"courseName"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits"`
}

// CourseResponse wraps a mutation result in the `{msg, course}` shape
type CourseResponse struct {
	Msg    string         `json:"msg"`
	Course *models.Course `json:"course"`
}
