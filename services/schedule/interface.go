// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	"medibook/database/repository"
	"medibook/models"
)

// Service manages date-specific overrides, blocked dates and the recurring
// weekly template.
type Service interface {
	// UpsertOverride creates or replaces the DateOverride for a date. Without
	// force, shrinking availability under existing non-cancelled appointments
	// is rejected; with force the override is applied and existing
	// appointments stay untouched.
	UpsertOverride(ctx context.Context, doctorID string, req models.OverrideUpsertRequest) (*models.DateOverride, error)
	// BlockDate marks a whole date unavailable via an override record.
	BlockDate(ctx context.Context, doctorID string, req models.BlockDateRequest) (*models.DateOverride, error)
	ListOverrides(ctx context.Context, doctorID string) ([]models.DateOverride, error)
	DeleteOverride(ctx context.Context, doctorID, date string) error
	// AddBlockedDate records a date in the doctor's cheap blockedDates set,
	// subject to the same safety check as BlockDate.
	AddBlockedDate(ctx context.Context, doctorID, date string, force bool) error
	RemoveBlockedDate(ctx context.Context, doctorID, date string) error
	// UpdateWeeklyTemplate replaces the doctor's recurring schedule.
	UpdateWeeklyTemplate(ctx context.Context, doctorID string, req models.ScheduleUpdateRequest) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	DoctorRepo      repository.DoctorRepository
	OverrideRepo    repository.OverrideRepository
	AppointmentRepo repository.AppointmentRepository
	Now             func() time.Time // injectable clock; nil means time.Now
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
