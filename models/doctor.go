package models

import "time"

// DayTemplate holds one weekday's recurring availability.
type DayTemplate struct {
	Available bool         `bson:"available" json:"available"`
	Windows   []TimeWindow `bson:"windows,omitempty" json:"windows,omitempty"`
}

// WeeklyTemplate maps lowercase weekday names ("monday" ... "sunday") to their setup.
// A missing weekday means the doctor does not consult that day.
type WeeklyTemplate map[string]DayTemplate

// Doctor represents a doctor profile with its embedded recurring schedule.
type Doctor struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Specialty    string         `bson:"specialty" json:"specialty"`
	Template     WeeklyTemplate `bson:"template,omitempty" json:"template,omitempty"`
	BlockedDates []string       `bson:"blockedDates,omitempty" json:"blockedDates,omitempty"` // "YYYY-MM-DD", fully unavailable, no override object
	SlotMinutes  int            `bson:"slotMinutes,omitempty" json:"slotMinutes,omitempty"`   // consultation length; 0 falls back to the configured default
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updated_at"`
}

// WeekdayKey converts a time.Weekday to the template map key.
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	default:
		return "saturday"
	}
}
