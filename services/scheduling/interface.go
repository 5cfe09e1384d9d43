// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"medibook/database/repository"
	"medibook/models"
)

// Engine computes bookable time slots for a doctor on a calendar date.
type Engine interface {
	// AvailableSlots resolves availability, generates discrete slots and
	// removes conflicts, returning the bookable slots in wire format,
	// ordered ascending by start.
	AvailableSlots(ctx context.Context, doctorID, date string) ([]models.ClockRange, error)
}

// DefaultEngine is the production implementation of the scheduling pipeline.
type DefaultEngine struct {
	DoctorRepo      repository.DoctorRepository
	OverrideRepo    repository.OverrideRepository
	AppointmentRepo repository.AppointmentRepository
	Now             func() time.Time // injectable clock; nil means time.Now
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
