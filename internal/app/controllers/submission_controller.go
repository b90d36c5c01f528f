package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/app/services"
	"github.com/yigit/ojtportal/internal/middleware"
	"github.com/yigit/ojtportal/internal/pkg/apiclient"
)

// SubmittedFileField is the multipart field holding the uploaded document
const SubmittedFileField = "submitted_file"

// SubmissionController handles requirement submissions
type SubmissionController struct {
	submissionService *services.SubmissionService
	maxUploadBytes    int64
	logger            zerolog.Logger
}

// NewSubmissionController creates a new SubmissionController.
// maxUploadBytes caps the request body; zero or less leaves it unlimited.
func NewSubmissionController(submissionService *services.SubmissionService, maxUploadBytes int64, logger zerolog.Logger) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		maxUploadBytes:    maxUploadBytes,
		logger:            logger,
	}
}

// Overview loads the available and the submitted requirements together
// @Summary Submission overview
// @Tags submissions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionOverviewResponse} "Requirements"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 502 {object} dto.ErrorResponse "Failed to load submission data"
// @Router /submissions [get]
func (c *SubmissionController) Overview(ctx *gin.Context) {
	resp, err := c.submissionService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgSubmissionLoadFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Available lists the requirements that can still be submitted
// @Summary Available requirements
// @Tags submissions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.AvailableRequirement} "Requirements"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /submissions/available [get]
func (c *SubmissionController) Available(ctx *gin.Context) {
	available, err := c.submissionService.Available(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgSubmissionLoadFailed)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(available))
}

// Submit uploads a document for a requirement
// @Summary Submit a requirement
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Param nameOfDocs formData string true "Requirement name"
// @Param submitted_file formData file true "Document"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitRequirementResponse} "Submitted"
// @Failure 400 {object} dto.ErrorResponse "Please select a requirement and file"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	if c.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	}

	var req dto.SubmitRequirementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		if c.tooLarge(ctx, err) {
			return
		}
		middleware.HandleBindingError(ctx, err)
		return
	}

	var upload *apiclient.Upload
	header, err := ctx.FormFile(SubmittedFileField)
	switch {
	case err == nil:
		file, err := header.Open()
		if err != nil {
			c.logger.Error().Err(err).Str("file", header.Filename).Msg("Failed to open uploaded file")
			middleware.HandleAPIError(ctx, err, services.MsgSubmissionFailed)
			return
		}
		defer file.Close()
		upload = &apiclient.Upload{Filename: header.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// reported by the service together with a missing requirement name
	default:
		if c.tooLarge(ctx, err) {
			return
		}
		middleware.HandleAPIError(ctx, err, services.MsgSubmissionFailed)
		return
	}

	resp, err := c.submissionService.Submit(ctx.Request.Context(), req.NameOfDocs, upload)
	if err != nil {
		middleware.HandleAPIError(ctx, err, services.MsgSubmissionFailed)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, resp.Message))
}

func (c *SubmissionController) tooLarge(ctx *gin.Context, err error) bool {
	var maxErr *http.MaxBytesError
	// some multipart paths flatten the error to its text
	if !errors.As(err, &maxErr) && !strings.Contains(err.Error(), "request body too large") {
		return false
	}
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "File too large").
		WithDetails(map[string]int64{"limit": c.maxUploadBytes})
	ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(errorDetail))
	return true
}
