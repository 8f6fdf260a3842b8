package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/app/repositories"
	"github.com/emre/studentms/internal/pkg/apperrors"
	"github.com/emre/studentms/internal/pkg/dberrors"
	"github.com/emre/studentms/internal/pkg/validation"
)

// GradeService handles grade assignment and the one-grade-per-enrollment
// rule.
type GradeService struct {
	gradeRepo   repositories.IGradeRepository
	studentRepo repositories.IStudentRepository
	courseRepo  repositories.ICourseRepository
	logger      zerolog.Logger
}

// NewGradeService creates a new GradeService
func NewGradeService(
	gradeRepo repositories.IGradeRepository,
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	logger zerolog.Logger,
) *GradeService {
	return &GradeService{
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		logger:      logger,
	}
}

// UpsertGrade assigns a score for a student in a course, creating the
// grade or updating the existing one for the pair. The letter is always
// re-derived from the score. Returns created=true when a new grade row
// was inserted.
func (s *GradeService) UpsertGrade(ctx context.Context, req *dto.UpsertGradeRequest) (*models.Grade, bool, error) {
	if req.Score == nil || !validation.IsValidScore(*req.Score) {
		return nil, false, apperrors.ErrScoreOutOfRange
	}
	score := *req.Score

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, false, err
	}
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, false, err
	}

	grade, err := s.gradeRepo.GetByStudentAndCourse(ctx, req.StudentID, req.CourseID)
	if err != nil && !errors.Is(err, apperrors.ErrGradeNotFound) {
		return nil, false, err
	}

	if grade != nil {
		grade.Score = score
		grade.GradeLetter = models.LetterForScore(score)
		if err := s.gradeRepo.UpdateScore(ctx, grade); err != nil {
			return nil, false, err
		}
		return grade, false, nil
	}

	grade = &models.Grade{
		StudentID:   req.StudentID,
		CourseID:    req.CourseID,
		Score:       score,
		GradeLetter: models.LetterForScore(score),
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		// Two concurrent upserts for the same pair race on the unique
		// index; the loser retries as an update (last write wins).
		if dberrors.IsUniqueViolation(err) {
			existing, getErr := s.gradeRepo.GetByStudentAndCourse(ctx, req.StudentID, req.CourseID)
			if getErr != nil {
				return nil, false, getErr
			}
			existing.Score = score
			existing.GradeLetter = models.LetterForScore(score)
			if updErr := s.gradeRepo.UpdateScore(ctx, existing); updErr != nil {
				return nil, false, updErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return grade, true, nil
}

// GetAllGrades retrieves every grade with student and course summaries
func (s *GradeService) GetAllGrades(ctx context.Context) ([]*dto.AdminGradeView, error) {
	views, err := s.gradeRepo.GetAllJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return views, nil
}

// GetGradesForStudent retrieves a student's own grades with course info
func (s *GradeService) GetGradesForStudent(ctx context.Context, studentID int64) ([]*dto.StudentGradeView, error) {
	views, err := s.gradeRepo.GetByStudentJoined(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student grades: %w", err)
	}
	return views, nil
}

// DeleteGrade removes a grade by ID
func (s *GradeService) DeleteGrade(ctx context.Context, id int64) error {
	return s.gradeRepo.Delete(ctx, id)
}
