package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartOfDayUTC(t *testing.T) {
	in := time.Date(2025, 1, 10, 23, 59, 0, 123456789, time.UTC)
	got := StartOfDayUTC(in)
	require.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfDayUTC_Idempotent(t *testing.T) {
	midnight := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, midnight, StartOfDayUTC(midnight))
	require.Equal(t, midnight, StartOfDayUTC(StartOfDayUTC(midnight)))
}

func TestStartOfDayUTC_ConvertsZone(t *testing.T) {
	// 2025-01-10 22:00 -05:00 is 2025-01-11 03:00 UTC, so the UTC day wins
	loc := time.FixedZone("EST", -5*3600)
	in := time.Date(2025, 1, 10, 22, 0, 0, 0, loc)
	require.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), StartOfDayUTC(in))
}

func TestSameDayCollapses(t *testing.T) {
	d1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
	require.Equal(t, StartOfDayUTC(d1), StartOfDayUTC(d2))
}

func TestEndOfDayUTC(t *testing.T) {
	in := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	got := EndOfDayUTC(in)
	require.Equal(t, time.Date(2025, 3, 1, 23, 59, 59, 999000000, time.UTC), got)
	require.True(t, got.Before(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)))
}
