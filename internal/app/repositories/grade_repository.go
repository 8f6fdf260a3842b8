package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/pkg/apperrors"
)

// GradeRepository handles database operations for grade assignments
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// GetByStudentAndCourse retrieves the grade for a (student, course)
// pair, or apperrors.ErrGradeNotFound when none exists yet.
func (r *GradeRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, score, grade_letter, created_at, updated_at
		FROM grades
		WHERE student_id = $1 AND course_id = $2
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, studentID, courseID).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.CourseID,
		&grade.Score,
		&grade.GradeLetter,
		&grade.CreatedAt,
		&grade.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// Create inserts a new grade
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, course_id, score, grade_letter)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		grade.StudentID,
		grade.CourseID,
		grade.Score,
		grade.GradeLetter,
	).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// UpdateScore replaces the score and the re-derived letter of a grade
func (r *GradeRepository) UpdateScore(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET score = $1, grade_letter = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, grade.Score, grade.GradeLetter, grade.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// GetAllJoined retrieves every grade joined with student and course
// summaries for the admin listing.
func (r *GradeRepository) GetAllJoined(ctx context.Context) ([]*dto.AdminGradeView, error) {
	query := `
		SELECT g.id, g.score, g.grade_letter,
		       s.id, s.student_unique_id, s.name, s.email,
		       c.id, c.course_code, c.course_name
		FROM grades g
		JOIN students s ON s.id = g.student_id
		JOIN courses c ON c.id = g.course_id
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var views []*dto.AdminGradeView
	for rows.Next() {
		var view dto.AdminGradeView
		if err := rows.Scan(
			&view.ID,
			&view.Score,
			&view.GradeLetter,
			&view.Student.ID,
			&view.Student.StudentUniqueID,
			&view.Student.Name,
			&view.Student.Email,
			&view.Course.ID,
			&view.Course.CourseCode,
			&view.Course.CourseName,
		); err != nil {
			return nil, err
		}
		views = append(views, &view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// GetByStudentJoined retrieves a student's grades joined with course
// code, name and credits.
func (r *GradeRepository) GetByStudentJoined(ctx context.Context, studentID int64) ([]*dto.StudentGradeView, error) {
	query := `
		SELECT g.id, g.score, g.grade_letter,
		       c.id, c.course_code, c.course_name, c.credits
		FROM grades g
		JOIN courses c ON c.id = g.course_id
		WHERE g.student_id = $1
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student grades: %w", err)
	}
	defer rows.Close()

	var views []*dto.StudentGradeView
	for rows.Next() {
		var view dto.StudentGradeView
		var credits int
		if err := rows.Scan(
			&view.ID,
			&view.Score,
			&view.GradeLetter,
			&view.Course.ID,
			&view.Course.CourseCode,
			&view.Course.CourseName,
			&credits,
		); err != nil {
			return nil, err
		}
		view.Course.Credits = &credits
		views = append(views, &view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// Delete removes a grade by ID
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}
