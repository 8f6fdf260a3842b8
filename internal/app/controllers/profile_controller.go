package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/app/services"
	"github.com/emre/studentms/internal/middleware"
	"github.com/emre/studentms/internal/pkg/apperrors"
	"github.com/emre/studentms/internal/pkg/validation"
)

// ProfileController handles the student self-service surface. All
// operations are scoped to the student ID carried in the caller's
// token claims.
type ProfileController struct {
	studentService *services.StudentService
	gradeService   *services.GradeService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(
	studentService *services.StudentService,
	gradeService *services.GradeService,
	logger zerolog.Logger,
) *ProfileController {
	return &ProfileController{
		studentService: studentService,
		gradeService:   gradeService,
		logger:         logger,
	}
}

// callerStudentID extracts the student ID claim. A student-role token
// without one means the linked profile no longer exists; the not-found
// message differs per endpoint, so callers pass their own.
func (c *ProfileController) callerStudentID(ctx *gin.Context, missingMsg string) (int64, bool) {
	id, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.NewMessage(missingMsg))
		return 0, false
	}
	return id, true
}

// GetProfile returns the caller's own student record
// @Summary Get own profile
// @Tags student
// @Produce json
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.MessageResponse "Student profile not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /student/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx, "Student profile not found")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewMessage("Student profile not found"))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateProfile applies a partial update to the caller's own record
// @Summary Update own profile
// @Description Partial update of name, email, date of birth, address and contact number. A present password (min 6 characters) re-hashes the login credential.
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} models.Student "The updated student record"
// @Failure 400 {object} dto.ValidationErrorsResponse "Validation failed or email already in use"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /student/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx, "Student not found")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors(bindingErrorMessages(err)...))
		return
	}

	if req.Password != nil && *req.Password != "" && !validation.IsValidPassword(*req.Password) {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors("Password must be 6 or more characters"))
		return
	}

	student, err := c.studentService.UpdateOwnProfile(ctx.Request.Context(), studentID, &req)
	if err != nil {
		// The self-service surface reports these two in the
		// field-validation shape existing clients expect.
		switch {
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors("Email already exists. Please use a different email."))
		case errors.Is(err, apperrors.ErrValidationFailed):
			ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors(err.Error()))
		default:
			middleware.HandleAPIError(ctx, err)
		}
		return
	}

	// The updated record is the whole response body here, unlike the
	// admin update which wraps it with a message.
	ctx.JSON(http.StatusOK, student)
}

// GetGrades returns the caller's own grades with course information
// @Summary Get own grades
// @Tags student
// @Produce json
// @Success 200 {array} dto.StudentGradeView
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /student/grades [get]
func (c *ProfileController) GetGrades(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx, "Student not found")
	if !ok {
		return
	}

	grades, err := c.gradeService.GetGradesForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, grades)
}
