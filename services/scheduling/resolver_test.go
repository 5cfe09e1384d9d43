package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medibook/models"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

func weekdayDoctor() *models.Doctor {
	return &models.Doctor{
		ID: "doc-1",
		Template: models.WeeklyTemplate{
			"monday": {Available: true, Windows: []models.TimeWindow{window(540, 720)}},
		},
	}
}

func TestResolveDayUsesTemplate(t *testing.T) {
	resolved := ResolveDay(weekdayDoctor(), nil, monday)

	assert.False(t, resolved.Blocked)
	assert.Equal(t, []models.TimeWindow{window(540, 720)}, resolved.Windows)
}

func TestResolveDayMissingWeekdayIsBlocked(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	resolved := ResolveDay(weekdayDoctor(), nil, tuesday)

	assert.True(t, resolved.Blocked)
	assert.Empty(t, resolved.Windows)
}

func TestResolveDayUnavailableWeekdayIsBlocked(t *testing.T) {
	doctor := weekdayDoctor()
	doctor.Template["monday"] = models.DayTemplate{
		Available: false,
		Windows:   []models.TimeWindow{window(540, 720)},
	}

	resolved := ResolveDay(doctor, nil, monday)
	assert.True(t, resolved.Blocked)
}

func TestResolveDayBlockedDateShortCircuits(t *testing.T) {
	doctor := weekdayDoctor()
	doctor.BlockedDates = []string{"2026-09-07"}

	resolved := ResolveDay(doctor, nil, monday)
	assert.True(t, resolved.Blocked)
}

func TestResolveDayOverrideSupersedesTemplate(t *testing.T) {
	override := &models.DateOverride{
		DoctorID:  "doc-1",
		Date:      "2026-09-07",
		Available: true,
		Windows:   []models.TimeWindow{window(840, 960)},
	}

	resolved := ResolveDay(weekdayDoctor(), override, monday)

	assert.False(t, resolved.Blocked)
	// Template windows must not leak through.
	assert.Equal(t, []models.TimeWindow{window(840, 960)}, resolved.Windows)
}

func TestResolveDayBlockedOverrideWinsOverTemplate(t *testing.T) {
	override := &models.DateOverride{
		DoctorID:  "doc-1",
		Date:      "2026-09-07",
		Available: false,
	}

	resolved := ResolveDay(weekdayDoctor(), override, monday)
	assert.True(t, resolved.Blocked)
	assert.Empty(t, resolved.Windows)
}

func TestResolveDayAvailableOverrideWithEmptyWindows(t *testing.T) {
	// An override flagged available but listing no windows means no slots,
	// never a fallback to the weekly template.
	override := &models.DateOverride{
		DoctorID:  "doc-1",
		Date:      "2026-09-07",
		Available: true,
	}

	resolved := ResolveDay(weekdayDoctor(), override, monday)
	assert.False(t, resolved.Blocked)
	assert.Empty(t, resolved.Windows)
}

func TestResolveDayFiltersUnavailableSubWindows(t *testing.T) {
	doctor := weekdayDoctor()
	doctor.Template["monday"] = models.DayTemplate{
		Available: true,
		Windows: []models.TimeWindow{
			window(540, 720),
			{Start: 780, End: 900, Available: false},
		},
	}

	resolved := ResolveDay(doctor, nil, monday)
	assert.Equal(t, []models.TimeWindow{window(540, 720)}, resolved.Windows)
}
