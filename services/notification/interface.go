// File: services/notification/interface.go
package notification

import (
	"context"
	"time"

	"medibook/models"
)

// Event types emitted by the scheduling core after a committed write.
const (
	EventBooked      = "appointment_booked"
	EventConfirmed   = "appointment_confirmed"
	EventCancelled   = "appointment_cancelled"
	EventCompleted   = "appointment_completed"
	EventRescheduled = "appointment_rescheduled"
	EventReminder    = "appointment_reminder"
)

// Event is the post-commit payload handed to the async pipeline. The core
// never waits on delivery; events are fire-and-forget by design of the
// booking latency path.
type Event struct {
	Type          string            `json:"type"`
	AppointmentID string            `json:"appointmentId"`
	Number        string            `json:"number"`
	DoctorID      string            `json:"doctorId"`
	PatientID     string            `json:"patientId"`
	Date          string            `json:"date"`
	Slot          models.ClockRange `json:"slot"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

// Publisher enqueues events for asynchronous handling.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	ScheduleReminder(ctx context.Context, event Event, at time.Time) error
}

// Sink receives events on the worker side. Actual dispatch channels (push,
// SMS, email) live behind this boundary and are out of the core's scope.
type Sink interface {
	Deliver(ctx context.Context, event Event) error
}
