package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/notification"
	"medibook/services/scheduling"
	"medibook/utils"
)

// Book re-resolves availability at booking time and attempts the atomic
// insert. A slot list computed earlier by the client is never trusted: time
// has passed and other bookings may have landed. The unique-index violation
// path is what prevents double booking under concurrency.
func (s *DefaultService) Book(ctx context.Context, req models.BookAppointmentRequest, idempotencyKey string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	day, err := s.validateBookingInput(req)
	if err != nil {
		return nil, err
	}

	// Replayed request: return the appointment the first attempt created.
	if idempotencyKey != "" {
		if appt, ok := s.lookupIdempotent(ctx, idempotencyKey); ok {
			logger.Info("idempotent booking replay",
				zap.String("key", idempotencyKey),
				zap.String("appointmentID", appt.ID))
			return appt, nil
		}
	}

	available, err := s.Engine.AvailableSlots(ctx, req.DoctorID, req.Date)
	if err != nil {
		return nil, err
	}
	if !containsSlot(available, req.Slot) {
		return nil, scheduling.NewSlotUnavailableError(
			"slot %s-%s on %s is not available", req.Slot.Start, req.Slot.End, req.Date)
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		Number:        generateAppointmentNumber(day),
		DoctorID:      req.DoctorID,
		PatientID:     req.PatientID,
		Date:          req.Date,
		TimeSlot:      req.Slot,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		Reason:        req.Reason,
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		if err == appointmentRepo.ErrDuplicateSlot {
			// Lost the race to a concurrent booking for the same slot.
			return nil, scheduling.NewSlotUnavailableError(
				"slot %s on %s was just booked", req.Slot.Start, req.Date)
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if idempotencyKey != "" {
		s.storeIdempotent(ctx, idempotencyKey, appt.ID)
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("number", appt.Number),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("start", appt.TimeSlot.Start))

	s.emitPostCommit(appt, notification.EventBooked)
	s.scheduleReminder(appt, day)

	return appt, nil
}

func (s *DefaultService) validateBookingInput(req models.BookAppointmentRequest) (time.Time, error) {
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, scheduling.NewValidationError("%v", err)
	}

	start, err := utils.ClockToMinutes(req.Slot.Start)
	if err != nil {
		return time.Time{}, scheduling.NewValidationError("%v", err)
	}
	end, err := utils.ClockToMinutes(req.Slot.End)
	if err != nil {
		return time.Time{}, scheduling.NewValidationError("%v", err)
	}
	if start >= end {
		return time.Time{}, scheduling.NewValidationError(
			"slot start %s must be before end %s", req.Slot.Start, req.Slot.End)
	}
	if day.Before(utils.Midnight(s.now())) {
		return time.Time{}, scheduling.NewValidationError("cannot book a past date %s", req.Date)
	}
	return day, nil
}

func (s *DefaultService) lookupIdempotent(ctx context.Context, key string) (*models.Appointment, bool) {
	if s.Cache == nil {
		return nil, false
	}
	apptID, err := s.Cache.Get(ctx, utils.IdempotencyKeyPrefix+key).Result()
	if err != nil || apptID == "" {
		return nil, false
	}
	appt, err := s.Repo.GetByID(ctx, apptID)
	if err != nil {
		return nil, false
	}
	return appt, true
}

func (s *DefaultService) storeIdempotent(ctx context.Context, key, apptID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.IdempotencyKeyPrefix+key, apptID, utils.IdempotencyKeyTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to store idempotency key",
			zap.String("key", key), zap.Error(err))
	}
}

// emitPostCommit hands the event to the async pipeline without blocking the
// request path. Delivery failures are logged, never propagated.
func (s *DefaultService) emitPostCommit(appt *models.Appointment, eventType string) {
	event := notification.Event{
		Type:          eventType,
		AppointmentID: appt.ID,
		Number:        appt.Number,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Slot:          appt.TimeSlot,
		OccurredAt:    s.now(),
	}
	go func() {
		if err := s.Publisher.Publish(context.Background(), event); err != nil {
			utils.GetLogger().Warn("failed to publish appointment event",
				zap.String("type", eventType),
				zap.String("appointmentID", appt.ID),
				zap.Error(err))
		}
	}()
}

func (s *DefaultService) scheduleReminder(appt *models.Appointment, day time.Time) {
	startMin, err := utils.ClockToMinutes(appt.TimeSlot.Start)
	if err != nil {
		return
	}
	remindAt := day.Add(time.Duration(startMin)*time.Minute - 24*time.Hour)
	if remindAt.Before(s.now()) {
		return
	}
	event := notification.Event{
		Type:          notification.EventReminder,
		AppointmentID: appt.ID,
		Number:        appt.Number,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Slot:          appt.TimeSlot,
		OccurredAt:    s.now(),
	}
	go func() {
		if err := s.Publisher.ScheduleReminder(context.Background(), event, remindAt); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}()
}

func containsSlot(available []models.ClockRange, want models.ClockRange) bool {
	for _, slot := range available {
		if slot.Start == want.Start && slot.End == want.End {
			return true
		}
	}
	return false
}

// generateAppointmentNumber builds a human-readable unique appointment number,
// e.g. "APT-20260830-4F2K9Q".
func generateAppointmentNumber(day time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("APT-%s-%s", day.Format("20060102"), suffix)
}
