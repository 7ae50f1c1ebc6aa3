package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRange(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	from, to := DayRange(at)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), to)

	// The interval is half-open: midnight of the next day is excluded.
	assert.True(t, from.Before(to))
	assert.False(t, to.Before(from.AddDate(0, 0, 1)))
}

func TestBeginningOfDayKeepsLocation(t *testing.T) {
	loc := time.FixedZone("PKT", 5*60*60)
	at := time.Date(2026, 6, 1, 23, 59, 59, 0, loc)

	start := BeginningOfDay(at)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestPreviousMonthRange(t *testing.T) {
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	from, to := PreviousMonthRange(at)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestPreviousMonthRangeYearRollover(t *testing.T) {
	at := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	from, to := PreviousMonthRange(at)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), to)
}
