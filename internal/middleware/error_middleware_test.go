package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/emre/studentms/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing token",
			err:        apperrors.ErrNoToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"No token, authorization denied"}`,
		},
		{
			name:       "expired token",
			err:        apperrors.ErrTokenExpired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Token is not valid"}`,
		},
		{
			name:       "malformed token",
			err:        apperrors.ErrTokenInvalid,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Token is not valid"}`,
		},
		{
			name:       "role not allowed",
			err:        apperrors.ErrRoleForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"msg":"Access denied: You do not have the required role"}`,
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"Invalid Credentials"}`,
		},
		{
			name:       "username taken",
			err:        apperrors.ErrUsernameTaken,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"User already exists"}`,
		},
		{
			name:       "student conflict",
			err:        apperrors.ErrStudentAlreadyExists,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"Student with this ID or Email already exists"}`,
		},
		{
			name:       "course conflict",
			err:        apperrors.ErrCourseAlreadyExists,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"Course with this code already exists"}`,
		},
		{
			name:       "score out of range",
			err:        apperrors.ErrScoreOutOfRange,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"Score must be an integer between 0 and 100"}`,
		},
		{
			name:       "student not found",
			err:        apperrors.ErrStudentNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"msg":"Student not found"}`,
		},
		{
			name:       "course not found",
			err:        apperrors.ErrCourseNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"msg":"Course not found"}`,
		},
		{
			name:       "grade not found",
			err:        apperrors.ErrGradeNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"msg":"Grade not found"}`,
		},
		{
			name:       "wrapped sentinel unwraps",
			err:        fmt.Errorf("context: %w", apperrors.ErrStudentNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"msg":"Student not found"}`,
		},
		{
			name:       "validation message passes through",
			err:        apperrors.NewValidationError("Invalid date of birth format"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"Invalid date of birth format"}`,
		},
		{
			name:       "not found message passes through",
			err:        apperrors.NewNotFoundError("Student not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"msg":"Student not found"}`,
		},
		{
			name:       "unexpected errors stay generic",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"msg":"Server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
