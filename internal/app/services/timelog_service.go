package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/helpers"
)

// TimeLogService handles clocking and the attendance history
type TimeLogService struct {
	api    APIFactory
	logger zerolog.Logger
}

// NewTimeLogService creates a new TimeLogService
func NewTimeLogService(api APIFactory, logger zerolog.Logger) *TimeLogService {
	return &TimeLogService{
		api:    api,
		logger: logger,
	}
}

// Clock records one attendance action
func (s *TimeLogService) Clock(ctx context.Context, req dto.ClockRequest) (*dto.ClockResponse, error) {
	if !req.Action.Valid() {
		return nil, apperrors.NewCustomError(
			fmt.Errorf("%w: %q", apperrors.ErrInvalidClockAction, req.Action),
			"Clock action must be one of IN, OUT, LUNCH IN, LUNCH OUT",
		)
	}

	resp, err := s.api(ctx).Clock(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("action", string(req.Action)).Msg("Clock action failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgClockFailed))
	}
	return resp, nil
}

// List returns the logs and hour summary, optionally bounded by YYYY-MM-DD dates
func (s *TimeLogService) List(ctx context.Context, filter dto.TimeLogFilterRequest) (*dto.TimeLogsSummary, error) {
	if err := helpers.ValidateDateRange(filter.From, filter.To); err != nil {
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, "Dates must be formatted YYYY-MM-DD"))
	}

	summary, err := s.api(ctx).ListTimeLogs(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load time logs")
		return nil, apperrors.NewCustomError(err, MsgTimeLogsLoadFailed)
	}
	if summary.Logs == nil {
		summary.Logs = []models.TimeLog{}
	}
	return summary, nil
}

// Today returns today's logs
func (s *TimeLogService) Today(ctx context.Context) ([]models.TimeLog, error) {
	logs, err := s.api(ctx).TodayTimeLogs(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load today's time logs")
		return nil, apperrors.NewCustomError(err, MsgTimeLogsLoadFailed)
	}
	if logs == nil {
		logs = []models.TimeLog{}
	}
	return logs, nil
}

// LastAction returns the most recent action in logs, empty when there is none.
// Logs come ordered oldest first.
func LastAction(logs []models.TimeLog) models.TimeLogAction {
	if len(logs) == 0 {
		return ""
	}
	return logs[len(logs)-1].Action
}
