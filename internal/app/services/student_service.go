package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/app/repositories"
	"github.com/emre/studentms/internal/pkg/apperrors"
	"github.com/emre/studentms/internal/pkg/auth"
	"github.com/emre/studentms/internal/pkg/dberrors"
	"github.com/emre/studentms/internal/pkg/validation"
)

const dateLayout = "2006-01-02"

// StudentService handles student profile operations and the linked
// login account lifecycle.
type StudentService struct {
	studentRepo repositories.IStudentRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// parseDate parses an ISO date string into a time pointer
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date of birth format")
	}
	return &t, nil
}

// CreateStudent creates a student profile together with its login
// account (username = student unique ID, role student). The two inserts
// run in one transaction, so callers see the pair created atomically.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	exists, err := s.studentRepo.ExistsByUniqueIDOrEmail(ctx, req.StudentUniqueID, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking student existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	taken, err := s.userRepo.UsernameExists(ctx, req.StudentUniqueID)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return nil, apperrors.ErrLoginUsernameUsed
	}

	dob, err := parseDate(derefOrEmpty(req.DateOfBirth))
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		StudentUniqueID: req.StudentUniqueID,
		Name:            req.Name,
		Email:           req.Email,
		DateOfBirth:     dob,
		Address:         req.Address,
		ContactNumber:   req.ContactNumber,
	}
	user := &models.User{
		Username: req.StudentUniqueID,
		Password: hashed,
		Role:     models.RoleStudent,
	}

	if err := s.studentRepo.CreateWithUser(ctx, student, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrStudentAlreadyExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Str("studentUniqueId", student.StudentUniqueID).Int64("id", student.ID).Msg("Student created")
	return student, nil
}

// GetAllStudents retrieves all students with their account summaries
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a single student
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// applyStudentUpdate copies the present fields of a partial update onto
// a student. A nil field leaves the current value, a present empty
// string clears it.
func applyStudentUpdate(student *models.Student, req *dto.UpdateStudentRequest) error {
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		if !validation.IsValidEmail(*req.Email) {
			return apperrors.NewValidationError("Please include a valid email")
		}
		student.Email = *req.Email
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return err
		}
		student.DateOfBirth = dob
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.ContactNumber != nil {
		student.ContactNumber = req.ContactNumber
	}
	return nil
}

// UpdateStudent applies a partial update to a student profile. A
// present password re-hashes and updates the linked login account.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != student.Email {
		inUse, err := s.studentRepo.EmailExistsForOther(ctx, *req.Email, student.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking email uniqueness: %w", err)
		}
		if inUse {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	if err := applyStudentUpdate(student, req); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	// An empty password is treated as "no change", matching the create
	// flow where a password is always required.
	if req.Password != nil && *req.Password != "" && student.UserID != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, *student.UserID, hashed); err != nil {
			return nil, err
		}
	}

	return student, nil
}

// DeleteStudent removes a student, its grades and its login account in
// one transaction.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.studentRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("Student deleted with login account and grades")
	return nil
}

// UpdateOwnProfile applies a student's self-service partial update.
// Identical to UpdateStudent but scoped to the caller's own record and
// with the profile password rule (min length) already checked by the
// controller.
func (s *StudentService) UpdateOwnProfile(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.UpdateStudent(ctx, studentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, err
	}
	return student, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
