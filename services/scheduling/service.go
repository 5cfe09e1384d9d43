package scheduling

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"medibook/config"
	"medibook/models"
	"medibook/utils"
)

// AvailableSlots runs the full Resolver -> Generator -> Conflict Detector
// pipeline for one doctor and date. Reads are not locked; callers booking a
// slot re-validate through this same path at write time.
func (e *DefaultEngine) AvailableSlots(ctx context.Context, doctorID, date string) ([]models.ClockRange, error) {
	logger := utils.GetLogger()

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	doctor, err := e.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewValidationError("doctor %s not found", doctorID)
		}
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", doctorID, err)
	}

	override, err := e.OverrideRepo.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to fetch override for %s on %s: %w", doctorID, date, err)
	}
	if err == mongo.ErrNoDocuments {
		override = nil
	}

	resolved := ResolveDay(doctor, override, day)
	if resolved.Blocked || len(resolved.Windows) == 0 {
		return []models.ClockRange{}, nil
	}

	duration := doctor.SlotMinutes
	if duration <= 0 {
		duration = config.AppConfig.DefaultSlotMinutes
	}
	if duration <= 0 {
		duration = 30
	}

	now := e.now()
	cutoff := 0
	today := utils.Midnight(now)
	switch {
	case day.Before(today):
		// Past dates have no bookable slots.
		return []models.ClockRange{}, nil
	case day.Equal(today):
		cutoff = now.Hour()*60 + now.Minute()
	}

	candidates := GenerateSlots(resolved.Windows, duration, cutoff)
	if len(candidates) == 0 {
		return []models.ClockRange{}, nil
	}

	appointments, err := e.AppointmentRepo.GetActiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for %s on %s: %w", doctorID, date, err)
	}

	free := FilterConflicts(candidates, appointments)
	logger.Debug("resolved available slots",
		zap.String("doctorID", doctorID),
		zap.String("date", date),
		zap.Int("candidates", len(candidates)),
		zap.Int("free", len(free)))

	out := make([]models.ClockRange, 0, len(free))
	for _, slot := range free {
		out = append(out, models.ClockRange{
			Start: utils.MinutesToClock(slot.Start),
			End:   utils.MinutesToClock(slot.End),
		})
	}
	return out, nil
}
