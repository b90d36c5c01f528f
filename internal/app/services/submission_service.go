package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apiclient"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
)

// SubmissionService handles requirement submissions
type SubmissionService struct {
	api    APIFactory
	logger zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(api APIFactory, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		api:    api,
		logger: logger,
	}
}

// Overview loads the available and the submitted requirements concurrently.
// Either call failing fails the whole load.
func (s *SubmissionService) Overview(ctx context.Context) (*dto.SubmissionOverviewResponse, error) {
	api := s.api(ctx)

	var (
		available []models.AvailableRequirement
		submitted []models.SubmittedRequirement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		available, err = api.ListAvailableRequirements(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		submitted, err = api.ListSubmissions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("Failed to load submission data")
		return nil, apperrors.NewCustomError(err, MsgSubmissionLoadFailed)
	}

	if available == nil {
		available = []models.AvailableRequirement{}
	}
	if submitted == nil {
		submitted = []models.SubmittedRequirement{}
	}
	return &dto.SubmissionOverviewResponse{
		Available: available,
		Submitted: submitted,
	}, nil
}

// Available lists the requirements that can still be submitted
func (s *SubmissionService) Available(ctx context.Context) ([]models.AvailableRequirement, error) {
	available, err := s.api(ctx).ListAvailableRequirements(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load available requirements")
		return nil, apperrors.NewCustomError(err, MsgSubmissionLoadFailed)
	}
	if available == nil {
		available = []models.AvailableRequirement{}
	}
	return available, nil
}

// Submit sends a file for the named requirement. Both are required.
func (s *SubmissionService) Submit(ctx context.Context, nameOfDocs string, file *apiclient.Upload) (*dto.SubmitRequirementResponse, error) {
	if strings.TrimSpace(nameOfDocs) == "" || file == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingUpload, MsgSubmissionIncomplete)
	}

	resp, err := s.api(ctx).SubmitRequirement(ctx, nameOfDocs, file)
	if err != nil {
		s.logger.Warn().Err(err).Str("nameOfDocs", nameOfDocs).Msg("Submission failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgSubmissionFailed))
	}

	s.logger.Info().Str("nameOfDocs", nameOfDocs).Str("file", file.Filename).Msg("Requirement submitted")
	return resp, nil
}
