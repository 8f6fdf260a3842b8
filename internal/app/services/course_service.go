package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/app/repositories"
	"github.com/emre/studentms/internal/pkg/apperrors"
	"github.com/emre/studentms/internal/pkg/dberrors"
)

// CourseService handles catalog operations
type CourseService struct {
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// CreateCourse adds a course to the catalog. Course codes are globally
// unique.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	exists, err := s.courseRepo.CodeExists(ctx, req.CourseCode)
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCourseAlreadyExists
	}

	course := &models.Course{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Description: req.Description,
		Credits:     req.Credits,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, err
	}

	s.logger.Info().Str("courseCode", course.CourseCode).Int64("id", course.ID).Msg("Course created")
	return course, nil
}

// GetAllCourses retrieves the whole catalog
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse applies a partial update (name, description, credits)
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CourseName != nil {
		course.CourseName = *req.CourseName
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		if *req.Credits < 1 {
			return nil, apperrors.NewValidationError("Credits must be at least 1")
		}
		course.Credits = *req.Credits
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and all grades referencing it
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.courseRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("Course deleted with associated grades")
	return nil
}
