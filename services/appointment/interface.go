// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"medibook/database/repository"
	"medibook/models"
	"medibook/services/notification"
	"medibook/services/scheduling"
)

// Service owns appointment creation and the lifecycle state machine. It is
// the only writer of appointment records.
type Service interface {
	// Book atomically reserves a slot, re-validating availability at write
	// time. idempotencyKey may be empty; when present, a replayed key returns
	// the originally created appointment instead of double-creating.
	Book(ctx context.Context, req models.BookAppointmentRequest, idempotencyKey string) (*models.Appointment, error)
	// Transition applies a lifecycle action (confirm, cancel, complete,
	// request_reschedule, reschedule) to an appointment.
	Transition(ctx context.Context, apptID string, req models.TransitionRequest) (*models.Appointment, error)
	GetByID(ctx context.Context, apptID string) (*models.Appointment, error)
	ListForDoctorDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo      repository.AppointmentRepository
	Engine    scheduling.Engine
	Publisher notification.Publisher
	Cache     *redis.Client
	Now       func() time.Time // injectable clock; nil means time.Now
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultService) GetByID(ctx context.Context, apptID string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, apptID)
}

func (s *DefaultService) ListForDoctorDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return s.Repo.GetActiveByDoctorAndDate(ctx, doctorID, date)
}

func (s *DefaultService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Repo.ListByPatient(ctx, patientID)
}
