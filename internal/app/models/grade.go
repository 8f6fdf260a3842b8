package models

import (
	"time"
)

// Grade represents a score a student earned in a course. At most one
// grade exists per (student, course) pair; writes go through an upsert.
type Grade struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	StudentID   int64     `json:"studentId" db:"student_id" example:"1"`
	CourseID    int64     `json:"courseId" db:"course_id" example:"2"`
	Score       int       `json:"score" db:"score" example:"87"` // Integer in [0,100]
	GradeLetter string    `json:"gradeLetter" db:"grade_letter" example:"A"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// gradeBand maps an inclusive lower score bound to a letter.
type gradeBand struct {
	min    int
	letter string
}

// Bands are ordered highest first; the first matching band wins.
var gradeBands = []gradeBand{
	{90, "A+"},
	{85, "A"},
	{80, "A-"},
	{75, "B+"},
	{70, "B"},
	{65, "B-"},
	{60, "C+"},
	{55, "C"},
	{50, "C-"},
	{40, "D"},
}

// LetterForScore derives the letter grade for a score. The derivation is
// deterministic and recomputed on every score write; the stored letter is
// never taken from client input.
func LetterForScore(score int) string {
	for _, band := range gradeBands {
		if score >= band.min {
			return band.letter
		}
	}
	return "F"
}
