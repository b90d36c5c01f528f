package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/app/services"
	"github.com/yigit/ojtportal/internal/middleware"
)

// TimeLogController handles clocking and the time log history
type TimeLogController struct {
	timeLogService *services.TimeLogService
	logger         zerolog.Logger
}

// NewTimeLogController creates a new TimeLogController
func NewTimeLogController(timeLogService *services.TimeLogService, logger zerolog.Logger) *TimeLogController {
	return &TimeLogController{
		timeLogService: timeLogService,
		logger:         logger,
	}
}

// Clock records a clock action
// @Summary Clock in or out
// @Tags timelogs
// @Accept json
// @Produce json
// @Param request body dto.ClockRequest true "Clock action"
// @Success 201 {object} dto.APIResponse{data=dto.ClockResponse} "Recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid clock action"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /timelogs/clock [post]
func (c *TimeLogController) Clock(ctx *gin.Context) {
	var req dto.ClockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.timeLogService.Clock(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgClockFailed)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, resp.Message))
}

// List returns the time logs and hour totals, optionally within a date window
// @Summary Time log history
// @Tags timelogs
// @Produce json
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} dto.APIResponse{data=dto.TimeLogsSummary} "Time logs"
// @Failure 400 {object} dto.ErrorResponse "Invalid date window"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /timelogs [get]
func (c *TimeLogController) List(ctx *gin.Context) {
	var filter dto.TimeLogFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.timeLogService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgTimeLogsLoadFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Today returns today's time logs
// @Summary Today's time logs
// @Tags timelogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.TimeLog} "Time logs"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /timelogs/today [get]
func (c *TimeLogController) Today(ctx *gin.Context) {
	logs, err := c.timeLogService.Today(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgTimeLogsLoadFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(logs))
}
