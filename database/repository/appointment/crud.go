// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

// Create inserts a new appointment. The partial unique index on
// (doctor_id, date, timeSlot.start) restricted to active documents rejects a
// concurrent insert for the same slot; that loss surfaces as ErrDuplicateSlot.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	appt.Active = appt.Status != models.StatusCancelled

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

// UpdateStatus atomically moves the appointment from one of fromStatuses to
// toStatus. The expected prior status rides in the filter, so a concurrent
// transition on the same document makes this a no-match rather than a
// lost update.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, apptID string, fromStatuses []string, toStatus string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     apptID,
		"status": bson.M{"$in": fromStatuses},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     toStatus,
			"active":     toStatus != models.StatusCancelled,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return &updated, nil
}

// Reschedule rewrites date and slot in a single conditional write. If the
// target slot is already held by another active appointment, the unique index
// rejects the update and the document is left untouched at its old slot.
func (r *mongoAppointmentRepo) Reschedule(ctx context.Context, apptID string, fromStatuses []string, date string, slot models.ClockRange) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     apptID,
		"status": bson.M{"$in": fromStatuses},
	}
	update := bson.M{
		"$set": bson.M{
			"date":       date,
			"timeSlot":   slot,
			"status":     models.StatusConfirmed,
			"active":     true,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateSlot
		}
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	return &updated, nil
}
