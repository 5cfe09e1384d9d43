package scheduling

import (
	"sort"

	"medibook/models"
)

// GenerateSlots produces the ordered discrete slots of the given duration that
// fit inside the availability windows. Slots advance by duration minutes and
// are fully contained within a window; a window shorter than the duration
// yields nothing. cutoff is the minute-of-day before which slots are excluded
// (pass the current minute for "today", 0 otherwise). Pure and stateless.
func GenerateSlots(windows []models.TimeWindow, duration int, cutoff int) []models.Slot {
	if duration <= 0 {
		return nil
	}

	var slots []models.Slot
	for _, w := range windows {
		if !w.Available {
			continue
		}
		for start := w.Start; start+duration <= w.End; start += duration {
			if start < cutoff {
				continue
			}
			slots = append(slots, models.Slot{Start: start, End: start + duration})
		}
	}

	// Windows are disjoint, but callers may pass them in any order.
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})
	return slots
}
