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
	"github.com/emre/studentms/internal/pkg/auth"
	"github.com/emre/studentms/internal/pkg/dberrors"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a new login account. Intended for admin initial
// setup; student accounts are normally created through the student
// management flow.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.IsValid() {
		return apperrors.NewValidationError("Role must be either admin or student")
	}

	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return apperrors.ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     role,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		// A concurrent registration can still slip past the pre-check.
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")
	return nil
}

// Login authenticates a user. The identifier may be a username or a
// student's public unique ID; both unknown-user and wrong-password
// produce the same generic failure.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, fmt.Errorf("error looking up user: %w", err)
		}
		// Fall back to the student's public unique ID.
		user, err = s.resolveUserByStudentUniqueID(ctx, req.Username)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		Role:      user.Role,
		UserID:    user.ID,
		StudentID: user.StudentID,
	}, nil
}

// resolveUserByStudentUniqueID finds the login account linked to the
// student carrying the given public unique ID.
func (s *AuthService) resolveUserByStudentUniqueID(ctx context.Context, uniqueID string) (*models.User, error) {
	student, err := s.studentRepo.GetByUniqueID(ctx, uniqueID)
	if err != nil {
		return nil, err
	}
	if student.UserID == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.userRepo.GetUserByID(ctx, *student.UserID)
}
