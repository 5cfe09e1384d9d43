package schedule

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"medibook/config"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"
)

func (s *DefaultService) UpsertOverride(ctx context.Context, doctorID string, req models.OverrideUpsertRequest) (*models.DateOverride, error) {
	if err := s.validateFutureDate(req.Date); err != nil {
		return nil, err
	}
	if req.Available {
		if err := validateWindows(req.Windows); err != nil {
			return nil, err
		}
	}
	if err := s.ensureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	// Shrinking availability under existing bookings needs force; the
	// override then only prevents new bookings, it never cancels anything.
	if err := s.checkBookingConflicts(ctx, doctorID, req.Date, req.Available, req.Windows, req.Force); err != nil {
		return nil, err
	}

	override := &models.DateOverride{
		DoctorID:  doctorID,
		Date:      req.Date,
		Available: req.Available,
		Windows:   req.Windows,
		Reason:    req.Reason,
	}
	saved, err := s.OverrideRepo.Upsert(ctx, override)
	if err != nil {
		return nil, fmt.Errorf("failed to save override: %w", err)
	}

	utils.GetLogger().Info("schedule override saved",
		zap.String("doctorID", doctorID),
		zap.String("date", req.Date),
		zap.Bool("available", req.Available))
	return saved, nil
}

func (s *DefaultService) BlockDate(ctx context.Context, doctorID string, req models.BlockDateRequest) (*models.DateOverride, error) {
	return s.UpsertOverride(ctx, doctorID, models.OverrideUpsertRequest{
		Date:      req.Date,
		Available: false,
		Reason:    req.Reason,
		Force:     req.Force,
	})
}

func (s *DefaultService) ListOverrides(ctx context.Context, doctorID string) ([]models.DateOverride, error) {
	return s.OverrideRepo.ListByDoctor(ctx, doctorID)
}

func (s *DefaultService) DeleteOverride(ctx context.Context, doctorID, date string) error {
	if err := s.OverrideRepo.DeleteByDoctorAndDate(ctx, doctorID, date); err != nil {
		if err == mongo.ErrNoDocuments {
			return scheduling.NewValidationError("no override for %s on %s", doctorID, date)
		}
		return fmt.Errorf("failed to delete override: %w", err)
	}
	return nil
}

func (s *DefaultService) AddBlockedDate(ctx context.Context, doctorID, date string, force bool) error {
	if err := s.validateFutureDate(date); err != nil {
		return err
	}
	if err := s.checkBookingConflicts(ctx, doctorID, date, false, nil, force); err != nil {
		return err
	}
	if err := s.DoctorRepo.AddBlockedDate(ctx, doctorID, date); err != nil {
		if err == mongo.ErrNoDocuments {
			return scheduling.NewValidationError("doctor %s not found", doctorID)
		}
		return fmt.Errorf("failed to block date: %w", err)
	}
	return nil
}

func (s *DefaultService) RemoveBlockedDate(ctx context.Context, doctorID, date string) error {
	if err := s.DoctorRepo.RemoveBlockedDate(ctx, doctorID, date); err != nil {
		if err == mongo.ErrNoDocuments {
			return scheduling.NewValidationError("doctor %s not found", doctorID)
		}
		return fmt.Errorf("failed to unblock date: %w", err)
	}
	return nil
}

func (s *DefaultService) UpdateWeeklyTemplate(ctx context.Context, doctorID string, req models.ScheduleUpdateRequest) error {
	for day, entry := range req.Template {
		if !validWeekday(day) {
			return scheduling.NewValidationError("unknown weekday %q", day)
		}
		if entry.Available {
			if err := validateWindows(entry.Windows); err != nil {
				return err
			}
		}
	}
	if req.SlotMinutes < 0 {
		return scheduling.NewValidationError("slotMinutes must be positive")
	}

	if err := s.DoctorRepo.UpdateTemplate(ctx, doctorID, req.Template, req.SlotMinutes); err != nil {
		if err == mongo.ErrNoDocuments {
			return scheduling.NewValidationError("doctor %s not found", doctorID)
		}
		return fmt.Errorf("failed to update weekly template: %w", err)
	}

	utils.GetLogger().Info("weekly template updated", zap.String("doctorID", doctorID))
	return nil
}

// checkBookingConflicts rejects availability changes that would strand
// existing non-cancelled appointments, unless force is set. Appointments are
// stranded when the date becomes unavailable or their start no longer falls
// inside an available window.
func (s *DefaultService) checkBookingConflicts(ctx context.Context, doctorID, date string, available bool, windows []models.TimeWindow, force bool) error {
	if force {
		return nil
	}

	appointments, err := s.AppointmentRepo.GetActiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return fmt.Errorf("failed to check existing appointments: %w", err)
	}

	var stranded int
	for _, appt := range appointments {
		start, err := utils.ClockToMinutes(appt.TimeSlot.Start)
		if err != nil {
			stranded++
			continue
		}
		if !available || !coveredByWindows(start, windows) {
			stranded++
		}
	}
	if stranded > 0 {
		return scheduling.NewBlockConflictError(
			"%d existing appointment(s) on %s fall outside the new schedule; use force to apply anyway", stranded, date)
	}
	return nil
}

func coveredByWindows(start int, windows []models.TimeWindow) bool {
	for _, w := range windows {
		if w.Available && start >= w.Start && start < w.End {
			return true
		}
	}
	return false
}

func (s *DefaultService) validateFutureDate(date string) error {
	day, err := utils.ParseDate(date)
	if err != nil {
		return scheduling.NewValidationError("%v", err)
	}
	if day.Before(utils.Midnight(s.now())) {
		return scheduling.NewValidationError("date %s is in the past", date)
	}
	return nil
}

func (s *DefaultService) ensureDoctor(ctx context.Context, doctorID string) error {
	if _, err := s.DoctorRepo.GetByID(ctx, doctorID); err != nil {
		if err == mongo.ErrNoDocuments {
			return scheduling.NewValidationError("doctor %s not found", doctorID)
		}
		return fmt.Errorf("failed to fetch doctor %s: %w", doctorID, err)
	}
	return nil
}

// validateWindows enforces start < end, no overlap between windows, and
// containment within the configured operating range.
func validateWindows(windows []models.TimeWindow) error {
	dayStart := config.AppConfig.OperatingDayStart
	dayEnd := config.AppConfig.OperatingDayEnd
	if dayEnd <= dayStart {
		dayStart, dayEnd = 0, 1440
	}

	for _, w := range windows {
		if w.Start >= w.End {
			return scheduling.NewValidationError(
				"window start %d must be before end %d", w.Start, w.End)
		}
		if w.Start < dayStart || w.End > dayEnd {
			return scheduling.NewValidationError(
				"window [%d, %d] outside operating range [%d, %d]", w.Start, w.End, dayStart, dayEnd)
		}
	}

	sorted := make([]models.TimeWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return scheduling.NewValidationError(
				"windows [%d, %d] and [%d, %d] overlap",
				sorted[i-1].Start, sorted[i-1].End, sorted[i].Start, sorted[i].End)
		}
	}
	return nil
}

func validWeekday(day string) bool {
	switch day {
	case "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday":
		return true
	}
	return false
}
