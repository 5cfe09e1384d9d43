package notification

import (
	"context"

	"go.uber.org/zap"

	"medibook/utils"
)

// LogSink records delivered events with the structured logger. It stands in
// for real dispatch channels, which are wired behind the Sink boundary by the
// host deployment.
type LogSink struct{}

func (LogSink) Deliver(_ context.Context, event Event) error {
	utils.GetLogger().Info("appointment event",
		zap.String("type", event.Type),
		zap.String("appointmentID", event.AppointmentID),
		zap.String("number", event.Number),
		zap.String("doctorID", event.DoctorID),
		zap.String("patientID", event.PatientID),
		zap.String("date", event.Date),
		zap.String("start", event.Slot.Start))
	return nil
}
