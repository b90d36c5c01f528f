package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/helpers"
	"github.com/yigit/ojtportal/internal/pkg/session"
)

// DashboardService assembles the landing page of a signed-in user
type DashboardService struct {
	api    APIFactory
	logger zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(api APIFactory, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		api:    api,
		logger: logger,
	}
}

// Get loads today's logs, the hour summary and the submission counts concurrently.
// The summary is required; the other parts are left empty when their call fails.
func (s *DashboardService) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	api := s.api(ctx)

	var (
		today     []models.TimeLog
		summary   *dto.TimeLogsSummary
		submitted []models.SubmittedRequirement
		available []models.AvailableRequirement
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		summary, err = api.ListTimeLogs(ctx, dto.TimeLogFilterRequest{})
		return err
	})
	g.Go(func() error {
		var err error
		if today, err = api.TodayTimeLogs(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Dashboard: today's logs unavailable")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if submitted, err = api.ListSubmissions(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Dashboard: submissions unavailable")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if available, err = api.ListAvailableRequirements(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Dashboard: requirements unavailable")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("Failed to load dashboard")
		return nil, apperrors.NewCustomError(err, MsgTimeLogsLoadFailed)
	}

	if today == nil {
		today = []models.TimeLog{}
	}

	resp := &dto.DashboardResponse{
		TodayLogs:          today,
		LastAction:         string(LastAction(today)),
		Rendered:           helpers.FormatHoursMinutes(summary.TotalHours, summary.TotalMinutes),
		Remaining:          helpers.FormatHoursMinutes(summary.RemainingHours, summary.RemainingMinutes),
		Summary:            summary,
		SubmittedCount:     len(submitted),
		PendingRequirement: pendingRequirements(available, submitted),
	}
	if store, ok := session.FromContext(ctx); ok {
		resp.User = store.Identity()
	}
	return resp, nil
}

// pendingRequirements counts the available requirements without a submission of the same name
func pendingRequirements(available []models.AvailableRequirement, submitted []models.SubmittedRequirement) int {
	done := make(map[string]struct{}, len(submitted))
	for _, s := range submitted {
		done[s.NameOfDocs] = struct{}{}
	}

	pending := 0
	for _, a := range available {
		if _, ok := done[a.NameOfFile]; !ok {
			pending++
		}
	}
	return pending
}
