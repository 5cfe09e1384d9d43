package models

// BookAppointmentRequest is the payload for creating an appointment.
type BookAppointmentRequest struct {
	PatientID string     `json:"patientId" binding:"required"`
	DoctorID  string     `json:"doctorId" binding:"required"`
	Date      string     `json:"date" binding:"required"` // "YYYY-MM-DD"
	Slot      ClockRange `json:"slot" binding:"required"`
	Reason    string     `json:"reason"`
}

// TransitionRequest drives a lifecycle transition on an appointment.
// Date and Slot are only read for the reschedule action.
type TransitionRequest struct {
	Action string      `json:"action" binding:"required"` // confirm | cancel | complete | request_reschedule | reschedule
	Date   string      `json:"date"`
	Slot   *ClockRange `json:"slot"`
}

// BlockDateRequest blocks a whole date for a doctor.
type BlockDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
	Force  bool   `json:"force"` // allow blocking even with existing appointments; those stay untouched
}

// OverrideUpsertRequest creates or replaces the DateOverride for a date.
type OverrideUpsertRequest struct {
	Date      string       `json:"date" binding:"required"`
	Available bool         `json:"available"`
	Windows   []TimeWindow `json:"windows"`
	Reason    string       `json:"reason"`
	Force     bool         `json:"force"` // apply even when existing appointments fall outside the new windows
}

// ScheduleUpdateRequest replaces the doctor's recurring weekly template.
type ScheduleUpdateRequest struct {
	Template    WeeklyTemplate `json:"template" binding:"required"`
	SlotMinutes int            `json:"slotMinutes"`
}
