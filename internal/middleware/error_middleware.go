package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/pkg/apperrors"
)

// HandleAPIError maps expected failures to a 4xx `{msg}` body and
// everything else to a generic 500. Internal details are logged
// server-side only, never exposed to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoToken):
		c.JSON(http.StatusUnauthorized, dto.NewMessage("No token, authorization denied"))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewMessage("Token is not valid"))
	case errors.Is(err, apperrors.ErrRoleForbidden):
		c.JSON(http.StatusForbidden, dto.NewMessage("Access denied: You do not have the required role"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewMessage("Invalid Credentials"))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.NewMessage("User already exists"))
	case errors.Is(err, apperrors.ErrStudentAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessage("Student with this ID or Email already exists"))
	case errors.Is(err, apperrors.ErrLoginUsernameUsed):
		c.JSON(http.StatusBadRequest, dto.NewMessage("Login username (student ID) already taken"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessage("Email already exists. Please use a different email."))
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessage("Course with this code already exists"))
	case errors.Is(err, apperrors.ErrScoreOutOfRange):
		c.JSON(http.StatusBadRequest, dto.NewMessage("Score must be an integer between 0 and 100"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessage("Student not found"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessage("Course not found"))
	case errors.Is(err, apperrors.ErrGradeNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessage("Grade not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessage("User not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessage(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewMessage(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewMessage("Server error"))
	}
}
