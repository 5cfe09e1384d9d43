package models

import "time"

// Appointment statuses.
const (
	StatusPending             = "pending"
	StatusConfirmed           = "confirmed"
	StatusCompleted           = "completed"
	StatusCancelled           = "cancelled"
	StatusRescheduleRequested = "reschedule_requested"
)

// Payment statuses. "completed" is the only terminal payment state.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Appointment represents a booked consultation slot.
// The Active flag mirrors Status != cancelled and backs the partial unique
// index on (doctor_id, date, timeSlot.start) that prevents double booking.
type Appointment struct {
	ID            string     `bson:"id" json:"id"`
	Number        string     `bson:"number" json:"number"` // human-readable appointment number, e.g. "APT-20260830-4F2K9Q"
	DoctorID      string     `bson:"doctor_id" json:"doctor_id"`
	PatientID     string     `bson:"patient_id" json:"patient_id"`
	Date          string     `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot      ClockRange `bson:"timeSlot" json:"timeSlot"`
	Status        string     `bson:"status" json:"status"`
	Active        bool       `bson:"active" json:"-"`
	PaymentStatus string     `bson:"payment_status" json:"payment_status"`
	Reason        string     `bson:"reason,omitempty" json:"reason,omitempty"` // patient-stated visit reason
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}
