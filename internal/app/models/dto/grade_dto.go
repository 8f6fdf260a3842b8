package dto

import "github.com/emre/studentms/internal/app/models"

// UpsertGradeRequest assigns or updates a score for a student in a
// course. Score is a pointer so that an explicit 0 passes binding.
type UpsertGradeRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
	CourseID  int64 `json:"courseId" binding:"required"`
	Score     *int  `json:"score" binding:"required"`
}

// GradeResponse wraps a mutation result in the `{msg, grade}` shape
type GradeResponse struct {
	Msg   string        `json:"msg"`
	Grade *models.Grade `json:"grade"`
}

// GradeStudentSummary is the student slice of the admin grade listing
type GradeStudentSummary struct {
	ID              int64  `json:"id"`
	StudentUniqueID string `json:"studentUniqueId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
}

// GradeCourseSummary is the course slice of a grade listing. Credits is
// only populated for the student-facing view.
type GradeCourseSummary struct {
	ID         int64  `json:"id"`
	CourseCode string `json:"courseCode"`
	CourseName string `json:"courseName"`
	Credits    *int   `json:"credits,omitempty"`
}

// AdminGradeView is a grade joined with student and course summaries
type AdminGradeView struct {
	ID          int64               `json:"id"`
	Student     GradeStudentSummary `json:"student"`
	Course      GradeCourseSummary  `json:"course"`
	Score       int                 `json:"score"`
	GradeLetter string              `json:"gradeLetter"`
}

// StudentGradeView is a grade joined with its course, scoped to the
// calling student.
type StudentGradeView struct {
	ID          int64              `json:"id"`
	Course      GradeCourseSummary `json:"course"`
	Score       int                `json:"score"`
	GradeLetter string             `json:"gradeLetter"`
}
