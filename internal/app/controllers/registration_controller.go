package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/app/services"
	"github.com/yigit/ojtportal/internal/middleware"
)

// RegistrationController serves the student self-registration form
type RegistrationController struct {
	registrationService *services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Change applies one field edit to the form state
// @Summary Apply a registration field edit
// @Description Masks the edited value, stores it under its payload field and clears that field's error
// @Tags registration
// @Accept json
// @Produce json
// @Param request body dto.RegistrationChangeRequest true "Form state and the edit"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationStateResponse} "Updated form state"
// @Failure 400 {object} dto.ErrorResponse "Unknown field or invalid request format"
// @Router /registration/change [post]
func (c *RegistrationController) Change(ctx *gin.Context) {
	var req dto.RegistrationChangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	state, err := c.registrationService.ApplyChange(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(state))
}

// Validate runs every registration rule against the form
// @Summary Validate a registration form
// @Tags registration
// @Accept json
// @Produce json
// @Param request body dto.RegistrationRequest true "Registration form"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationStateResponse} "Validation result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /registration/validate [post]
func (c *RegistrationController) Validate(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.registrationService.Validate(req)))
}

// Submit sends a valid registration for admin approval
// @Summary Submit a student registration
// @Description Validates the form and forwards it to the OJT API. Invalid forms are never sent.
// @Tags registration
// @Accept json
// @Produce json
// @Param request body dto.RegistrationRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Registration submitted"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 502 {object} dto.ErrorResponse "OJT API unavailable"
// @Router /registration [post]
func (c *RegistrationController) Submit(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.registrationService.Submit(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgRegistrationFailed)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, resp.Message))
}
