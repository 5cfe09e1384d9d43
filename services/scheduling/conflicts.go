package scheduling

import (
	"medibook/models"
	"medibook/utils"
)

// FilterConflicts removes candidate slots whose start time is occupied by a
// non-cancelled appointment. Slots are non-overlapping by construction, so
// start-time equality is sufficient to detect a conflict.
func FilterConflicts(candidates []models.Slot, appointments []models.Appointment) []models.Slot {
	if len(appointments) == 0 {
		return candidates
	}

	occupied := make(map[string]struct{}, len(appointments))
	for _, appt := range appointments {
		occupied[appt.TimeSlot.Start] = struct{}{}
	}

	var free []models.Slot
	for _, slot := range candidates {
		if _, taken := occupied[utils.MinutesToClock(slot.Start)]; taken {
			continue
		}
		free = append(free, slot)
	}
	return free
}
