package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/app/services"
	"github.com/emre/studentms/internal/middleware"
)

// StudentController handles the admin student management surface
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// parseIDParam reads the :id path parameter as an int64
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid ID"))
		return 0, false
	}
	return id, true
}

// CreateStudent creates a student profile with its login account
// @Summary Create a student
// @Description Creates a student profile together with a login account whose username is the student's unique ID.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.MessageResponse "Student with this ID or Email already exists"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors(bindingErrorMessages(err)...))
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentResponse{
		Msg:     "Student created successfully",
		Student: student,
	})
}

// GetAllStudents lists all students
// @Summary List students
// @Description Returns every student with a summary of the linked login account.
// @Tags admin
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves one student
// @Summary Get a student
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent applies a partial update to a student
// @Summary Update a student
// @Description Partial update; absent fields are left untouched. A present password re-hashes the linked login account.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.StudentResponse "Student updated successfully"
// @Failure 400 {object} dto.MessageResponse "Email already exists"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrors(bindingErrorMessages(err)...))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{
		Msg:     "Student updated successfully",
		Student: student,
	})
}

// DeleteStudent removes a student with its grades and login account
// @Summary Delete a student
// @Description Deletes the student, every grade referencing it and the linked login account in one transaction.
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse "Student removed successfully"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Server error"
// @Security ApiKeyAuth
// @Router /admin/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage("Student removed successfully"))
}
