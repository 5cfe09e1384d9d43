// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateSlot is returned when an insert or reschedule collides with the
// unique (doctor_id, date, timeSlot.start) index over active appointments.
var ErrDuplicateSlot = errors.New("slot already booked")

// ErrNoMatch is returned by conditional writes whose filter matched no document,
// either because the appointment does not exist or its status changed underneath.
var ErrNoMatch = errors.New("no appointment matched")

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, apptID string) (*models.Appointment, error)
	GetByNumber(ctx context.Context, number string) (*models.Appointment, error)
	GetActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, apptID string, fromStatuses []string, toStatus string) (*models.Appointment, error)
	Reschedule(ctx context.Context, apptID string, fromStatuses []string, date string, slot models.ClockRange) (*models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
