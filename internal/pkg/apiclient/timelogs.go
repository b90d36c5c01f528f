package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
)

// Clock records one attendance action
func (c *Client) Clock(ctx context.Context, req dto.ClockRequest) (*dto.ClockResponse, error) {
	var resp dto.ClockResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/timelogs/clock", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTimeLogs returns the logs and hour summary, optionally limited to [from, to]
func (c *Client) ListTimeLogs(ctx context.Context, filter dto.TimeLogFilterRequest) (*dto.TimeLogsSummary, error) {
	query := url.Values{}
	if filter.From != "" {
		query.Set("from", filter.From)
	}
	if filter.To != "" {
		query.Set("to", filter.To)
	}

	var resp dataEnvelope[dto.TimeLogsSummary]
	if err := c.getJSON(ctx, "/timelogs", query, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// TodayTimeLogs returns today's logs of the signed-in student
func (c *Client) TodayTimeLogs(ctx context.Context) ([]models.TimeLog, error) {
	var resp dataEnvelope[[]models.TimeLog]
	if err := c.getJSON(ctx, "/timelogs/today", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
