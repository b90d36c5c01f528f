package helpers

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yigit/ojtportal/internal/pkg/apperrors"
)

// DateLayout is the YYYY-MM-DD format of time log filters
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDateFilter validates an optional YYYY-MM-DD bound. An empty value means no bound.
func ParseDateFilter(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, value)
	}
	return t, nil
}

// ValidateDateRange checks both bounds and that from is not after to
func ValidateDateRange(from, to string) error {
	start, err := ParseDateFilter(from)
	if err != nil {
		return err
	}
	end, err := ParseDateFilter(to)
	if err != nil {
		return err
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return apperrors.NewCustomError(apperrors.ErrInvalidDate, "From date must not be after To date")
	}
	return nil
}

// FormatHoursMinutes renders an hour and minute pair as "12h 5m". Fractions are dropped.
func FormatHoursMinutes(hours, minutes float64) string {
	h := int64(math.Max(0, math.Floor(hours)))
	m := int64(math.Max(0, math.Floor(minutes)))
	return fmt.Sprintf("%dh %dm", h, m)
}
