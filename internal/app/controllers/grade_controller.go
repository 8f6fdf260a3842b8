package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/app/services"
	"github.com/emre/studentms/internal/middleware"
)

// GradeController handles the admin grade assignment surface
type GradeController struct {
	gradeService *services.GradeService
	logger       zerolog.Logger
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService, logger zerolog.Logger) *GradeController {
	return &GradeController{
		gradeService: gradeService,
		logger:       logger,
	}
}

// UpsertGrade assigns or updates a score for a student in a course
// @Summary Assign a grade
// @Description Creates the grade for the (student, course) pair or updates the existing one. The letter is derived from the score on every write.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpsertGradeRequest true "Grade assignment"
// @Success 200 {object} dto.GradeResponse "Grade updated successfully"
// @Success 201 {object} dto.GradeResponse "Grade assigned successfully"
// @Failure 400 {object} dto.MessageResponse "Score must be an integer between 0 and 100"
// @Failure 404 {object} dto.MessageResponse "Student or course not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/grades [post]
func (c *GradeController) UpsertGrade(ctx *gin.Context) {
	var req dto.UpsertGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors(bindingErrorMessages(err)...))
		return
	}

	grade, created, err := c.gradeService.UpsertGrade(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if created {
		ctx.JSON(http.StatusCreated, dto.GradeResponse{
			Msg:   "Grade assigned successfully",
			Grade: grade,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.GradeResponse{
		Msg:   "Grade updated successfully",
		Grade: grade,
	})
}

// GetAllGrades lists every grade with student and course summaries
// @Summary List grades
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AdminGradeView
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/grades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetAllGrades(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, grades)
}

// DeleteGrade removes a grade
// @Summary Delete a grade
// @Tags admin
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.MessageResponse "Grade removed successfully"
// @Failure 404 {object} dto.MessageResponse "Grade not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage("Grade removed successfully"))
}
