package scheduling

import (
	"time"

	"medibook/models"
)

// ResolveDay merges the doctor's recurring weekly template with any
// date-specific override and the blockedDates shortcut into the authoritative
// availability for one calendar date. Resolution order, first match wins:
//
//  1. An override for the date supersedes the template entirely.
//  2. A date in blockedDates is fully unavailable.
//  3. The weekly template entry for the date's weekday applies; a missing or
//     unavailable entry means blocked. Absence of data defaults to unavailable.
//
// Pure: all inputs are fetched by the caller.
func ResolveDay(doctor *models.Doctor, override *models.DateOverride, day time.Time) models.ResolvedDay {
	if override != nil {
		if !override.Available {
			return models.ResolvedDay{Blocked: true}
		}
		return models.ResolvedDay{Windows: availableWindows(override.Windows)}
	}

	dateStr := day.Format("2006-01-02")
	for _, blocked := range doctor.BlockedDates {
		if blocked == dateStr {
			return models.ResolvedDay{Blocked: true}
		}
	}

	entry, ok := doctor.Template[models.WeekdayKey(day.Weekday())]
	if !ok || !entry.Available {
		return models.ResolvedDay{Blocked: true}
	}
	return models.ResolvedDay{Windows: availableWindows(entry.Windows)}
}

func availableWindows(windows []models.TimeWindow) []models.TimeWindow {
	var out []models.TimeWindow
	for _, w := range windows {
		if w.Available {
			out = append(out, w)
		}
	}
	return out
}
