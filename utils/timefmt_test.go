package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "09:00", MinutesToClock(540))
	assert.Equal(t, "09:05", MinutesToClock(545))
	assert.Equal(t, "23:59", MinutesToClock(1439))
}

func TestClockToMinutes(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"09:30": 570,
		"23:59": 1439,
	}
	for clock, want := range cases {
		got, err := ClockToMinutes(clock)
		require.NoError(t, err, clock)
		assert.Equal(t, want, got, clock)
	}
}

func TestClockToMinutesRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 540, 727, 1439} {
		got, err := ClockToMinutes(MinutesToClock(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, got)
	}
}

func TestClockToMinutesInvalid(t *testing.T) {
	for _, clock := range []string{"", "9am", "25:00", "12:75", "noon"} {
		_, err := ClockToMinutes(clock)
		assert.Error(t, err, clock)
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.September, day.Month())
	assert.Equal(t, 7, day.Day())
	assert.Equal(t, time.Local, day.Location())

	_, err = ParseDate("07/09/2026")
	assert.Error(t, err)
	_, err = ParseDate("2026-13-40")
	assert.Error(t, err)
}

func TestMidnight(t *testing.T) {
	at := time.Date(2026, 9, 7, 14, 23, 5, 12, time.Local)
	mid := Midnight(at)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local), mid)
	assert.Equal(t, mid, Midnight(mid))
}
