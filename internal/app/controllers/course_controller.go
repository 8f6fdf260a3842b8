package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/app/services"
	"github.com/emre/studentms/internal/middleware"
)

// CourseController handles the admin course catalog surface
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse adds a course to the catalog
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse "Course created successfully"
// @Failure 400 {object} dto.MessageResponse "Course with this code already exists"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors(bindingErrorMessages(err)...))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CourseResponse{
		Msg:    "Course created successfully",
		Course: course,
	})
}

// GetAllCourses lists the catalog
// @Summary List courses
// @Tags admin
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// UpdateCourse applies a partial update to a course
// @Summary Update a course
// @Description Partial update of name, description and credits; absent fields are left untouched.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.CourseResponse "Course updated successfully"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors(bindingErrorMessages(err)...))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseResponse{
		Msg:    "Course updated successfully",
		Course: course,
	})
}

// DeleteCourse removes a course and every grade referencing it
// @Summary Delete a course
// @Tags admin
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse "Course removed successfully"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage("Course removed successfully"))
}
