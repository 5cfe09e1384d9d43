package appointment

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/notification"
	"medibook/services/scheduling"
	"medibook/utils"
)

// Lifecycle actions accepted by Transition.
const (
	ActionConfirm           = "confirm"
	ActionCancel            = "cancel"
	ActionComplete          = "complete"
	ActionRequestReschedule = "request_reschedule"
	ActionReschedule        = "reschedule"
)

// allowedFrom maps each action to the statuses it may be applied from, and
// the status it lands on. completed and cancelled are terminal.
var allowedFrom = map[string]struct {
	from []string
	to   string
}{
	ActionConfirm:           {from: []string{models.StatusPending, models.StatusRescheduleRequested}, to: models.StatusConfirmed},
	ActionCancel:            {from: []string{models.StatusPending, models.StatusConfirmed, models.StatusRescheduleRequested}, to: models.StatusCancelled},
	ActionComplete:          {from: []string{models.StatusConfirmed}, to: models.StatusCompleted},
	ActionRequestReschedule: {from: []string{models.StatusPending, models.StatusConfirmed}, to: models.StatusRescheduleRequested},
	ActionReschedule:        {from: []string{models.StatusPending, models.StatusConfirmed, models.StatusRescheduleRequested}, to: models.StatusConfirmed},
}

var eventForAction = map[string]string{
	ActionConfirm:    notification.EventConfirmed,
	ActionCancel:     notification.EventCancelled,
	ActionComplete:   notification.EventCompleted,
	ActionReschedule: notification.EventRescheduled,
}

// Transition applies a lifecycle action. The expected prior status travels
// inside the conditional write, so a concurrent transition on the same
// appointment loses cleanly with a stale-state error instead of corrupting
// the record.
func (s *DefaultService) Transition(ctx context.Context, apptID string, req models.TransitionRequest) (*models.Appointment, error) {
	rule, ok := allowedFrom[req.Action]
	if !ok {
		return nil, scheduling.NewValidationError("unknown action %q", req.Action)
	}

	current, err := s.Repo.GetByID(ctx, apptID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, scheduling.NewValidationError("appointment %s not found", apptID)
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", apptID, err)
	}
	if !statusIn(current.Status, rule.from) {
		return nil, scheduling.NewInvalidTransitionError(
			"cannot %s an appointment in status %s", req.Action, current.Status)
	}

	if req.Action == ActionReschedule {
		return s.reschedule(ctx, current, rule.from, req)
	}

	updated, err := s.Repo.UpdateStatus(ctx, apptID, rule.from, rule.to)
	if err != nil {
		if err == appointmentRepo.ErrNoMatch {
			// Status changed between read and write; the loser gets a
			// stale-state error rather than a silent overwrite.
			return nil, scheduling.NewInvalidTransitionError(
				"appointment %s changed concurrently, re-fetch and retry", apptID)
		}
		return nil, fmt.Errorf("failed to transition appointment %s: %w", apptID, err)
	}

	utils.GetLogger().Info("appointment transitioned",
		zap.String("appointmentID", apptID),
		zap.String("action", req.Action),
		zap.String("status", updated.Status))

	if eventType, ok := eventForAction[req.Action]; ok {
		s.emitPostCommit(updated, eventType)
	}
	return updated, nil
}

// reschedule is logically a cancel-then-rebook: the new date/slot is
// validated against freshly resolved availability and then reacquired
// atomically exactly like a fresh booking. On any failure the appointment is
// left unchanged at its old slot.
func (s *DefaultService) reschedule(ctx context.Context, current *models.Appointment, fromStatuses []string, req models.TransitionRequest) (*models.Appointment, error) {
	if req.Slot == nil || req.Date == "" {
		return nil, scheduling.NewValidationError("reschedule requires date and slot")
	}

	if _, err := s.validateBookingInput(models.BookAppointmentRequest{
		PatientID: current.PatientID,
		DoctorID:  current.DoctorID,
		Date:      req.Date,
		Slot:      *req.Slot,
	}); err != nil {
		return nil, err
	}

	available, err := s.Engine.AvailableSlots(ctx, current.DoctorID, req.Date)
	if err != nil {
		return nil, err
	}
	if !containsSlot(available, *req.Slot) {
		return nil, scheduling.NewSlotUnavailableError(
			"slot %s-%s on %s is not available", req.Slot.Start, req.Slot.End, req.Date)
	}

	updated, err := s.Repo.Reschedule(ctx, current.ID, fromStatuses, req.Date, *req.Slot)
	if err != nil {
		switch err {
		case appointmentRepo.ErrDuplicateSlot:
			return nil, scheduling.NewSlotUnavailableError(
				"slot %s on %s was just booked", req.Slot.Start, req.Date)
		case appointmentRepo.ErrNoMatch:
			return nil, scheduling.NewInvalidTransitionError(
				"appointment %s changed concurrently, re-fetch and retry", current.ID)
		}
		return nil, fmt.Errorf("failed to reschedule appointment %s: %w", current.ID, err)
	}

	utils.GetLogger().Info("appointment rescheduled",
		zap.String("appointmentID", updated.ID),
		zap.String("date", updated.Date),
		zap.String("start", updated.TimeSlot.Start))

	s.emitPostCommit(updated, notification.EventRescheduled)
	return updated, nil
}

func statusIn(status string, set []string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
