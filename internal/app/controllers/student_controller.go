package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/app/services"
	"github.com/yigit/ojtportal/internal/middleware"
)

// StudentController handles the student profile and the coordinator student list
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

// GetProfile returns the signed-in student's record
// @Summary Get own profile
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 502 {object} dto.ErrorResponse "OJT API unavailable"
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	student, err := c.studentService.GetProfile(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgProfileLoadFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// UpdateProfile changes the signed-in student's editable fields
// @Summary Update own profile
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentProfileUpdateRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /students/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.StudentProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateProfile(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgProfileUpdateFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Profile updated"))
}

// ListStudents returns one page of the filtered student list
// @Summary List students
// @Description Searches name, student ID, course and email, filters by status and paginates
// @Tags students
// @Produce json
// @Param search query string false "Search text"
// @Param status query string false "Status filter, all for none" default(all)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var filter dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.studentService.ListStudents(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgStudentsLoadFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetStudent returns one student record
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgStudentsLoadFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// CreateStudent adds a student record
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student fields"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Created student"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgStudentSaveFailed)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student))
}

// UpdateStudent changes a student record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student record ID"
// @Param request body dto.StudentRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated student"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgStudentSaveFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Tags students
// @Param id path string true "Student record ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgStudentDeleteFailed)
		return
	}
	ctx.Status(http.StatusNoContent)
}
