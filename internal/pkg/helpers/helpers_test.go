package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/ojtportal/internal/pkg/apperrors"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	page, info := Paginate(items, 2, 5)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, page)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(12), info.TotalItems)

	page, info = Paginate(items, 3, 5)
	assert.Equal(t, []int{11, 12}, page)
	assert.Equal(t, 3, info.CurrentPage)

	page, info = Paginate(items, 9, 5)
	assert.Equal(t, []int{11, 12}, page)
	assert.Equal(t, 3, info.CurrentPage)

	page, info = Paginate([]int{}, 1, 0)
	assert.Empty(t, page)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, DefaultPageSize, info.PageSize)
}

func TestCalculateSliceIndices(t *testing.T) {
	start, end := CalculateSliceIndices(1, 10, 4)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)

	start, end = CalculateSliceIndices(3, 10, 4)
	assert.Equal(t, 4, start)
	assert.Equal(t, 4, end)
}

func TestParseDateFilter(t *testing.T) {
	d, err := ParseDateFilter("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseDateFilter("2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.January, d.Month())

	_, err = ParseDateFilter("01/31/2026")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("", ""))
	assert.NoError(t, ValidateDateRange("2026-01-01", ""))
	assert.NoError(t, ValidateDateRange("2026-01-01", "2026-01-01"))
	assert.ErrorIs(t, ValidateDateRange("2026-02-01", "2026-01-01"), apperrors.ErrInvalidDate)
	assert.ErrorIs(t, ValidateDateRange("2026-01-01", "tomorrow"), apperrors.ErrInvalidDate)
}

func TestFormatHoursMinutes(t *testing.T) {
	assert.Equal(t, "120h 30m", FormatHoursMinutes(120, 30))
	assert.Equal(t, "0h 0m", FormatHoursMinutes(0, 0))
	assert.Equal(t, "7h 5m", FormatHoursMinutes(7.9, 5.5))
	assert.Equal(t, "0h 0m", FormatHoursMinutes(-3, -1))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseDuration("30s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
