package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibook/models"
	"medibook/services/scheduling"
)

const testDoctorID = "doc-1"

// testDate is a Monday comfortably in the future relative to the injected clock.
const testDate = "2026-09-07"

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

func newTestService() (*DefaultService, *memAppointmentRepo, *fakePublisher) {
	doctor := &models.Doctor{
		ID:          testDoctorID,
		SlotMinutes: 30,
		Template: models.WeeklyTemplate{
			"monday": {Available: true, Windows: []models.TimeWindow{
				{Start: 540, End: 720, Available: true}, // 09:00-12:00
			}},
		},
	}

	apptRepo := newMemAppointmentRepo()
	engine := &scheduling.DefaultEngine{
		DoctorRepo:      &memDoctorRepo{doctors: map[string]*models.Doctor{doctor.ID: doctor}},
		OverrideRepo:    &memOverrideRepo{overrides: map[string]*models.DateOverride{}},
		AppointmentRepo: apptRepo,
		Now:             func() time.Time { return testNow },
	}
	publisher := &fakePublisher{}
	svc := &DefaultService{
		Repo:      apptRepo,
		Engine:    engine,
		Publisher: publisher,
		Now:       func() time.Time { return testNow },
	}
	return svc, apptRepo, publisher
}

func bookReq(start, end string) models.BookAppointmentRequest {
	return models.BookAppointmentRequest{
		PatientID: "pat-1",
		DoctorID:  testDoctorID,
		Date:      testDate,
		Slot:      models.ClockRange{Start: start, End: end},
		Reason:    "checkup",
	}
}

func TestBookCreatesPendingAppointment(t *testing.T) {
	svc, _, publisher := newTestService()

	appt, err := svc.Book(context.Background(), bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, models.PaymentPending, appt.PaymentStatus)
	assert.Equal(t, testDate, appt.Date)
	assert.Regexp(t, `^APT-20260907-[0-9A-F]{6}$`, appt.Number)

	assert.Eventually(t, func() bool { return publisher.eventCount() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestBookTakenSlotFails(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Book(context.Background(), bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), bookReq("09:00", "09:30"), "")
	assert.Equal(t, scheduling.CodeSlotUnavailable, scheduling.ErrCode(err))
}

func TestBookSlotOutsideScheduleFails(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Book(context.Background(), bookReq("13:00", "13:30"), "")
	assert.Equal(t, scheduling.CodeSlotUnavailable, scheduling.ErrCode(err))
}

func TestBookValidation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []models.BookAppointmentRequest{
		{PatientID: "pat-1", DoctorID: testDoctorID, Date: "not-a-date", Slot: models.ClockRange{Start: "09:00", End: "09:30"}},
		{PatientID: "pat-1", DoctorID: testDoctorID, Date: testDate, Slot: models.ClockRange{Start: "09:30", End: "09:00"}},
		{PatientID: "pat-1", DoctorID: testDoctorID, Date: testDate, Slot: models.ClockRange{Start: "9 am", End: "10 am"}},
		{PatientID: "pat-1", DoctorID: testDoctorID, Date: "2020-01-06", Slot: models.ClockRange{Start: "09:00", End: "09:30"}},
	}
	for _, req := range cases {
		_, err := svc.Book(context.Background(), req, "")
		assert.Equal(t, scheduling.CodeValidation, scheduling.ErrCode(err), "req %+v", req)
	}
}

func TestBookNoDoubleBookingUnderConcurrency(t *testing.T) {
	svc, _, _ := newTestService()

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), bookReq("10:00", "10:30"), "")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.Equal(t, scheduling.CodeSlotUnavailable, scheduling.ErrCode(err))
		losses++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)
}

func TestLifecycleHappyPath(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	confirmed, err := svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionConfirm})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)

	completed, err := svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionComplete})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
}

func TestCancelCompletedIsInvalid(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)
	_, err = svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionConfirm})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionComplete})
	require.NoError(t, err)

	_, err = svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionCancel})
	assert.Equal(t, scheduling.CodeInvalidTransition, scheduling.ErrCode(err))
}

func TestCompleteFromPendingIsInvalid(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionComplete})
	assert.Equal(t, scheduling.CodeInvalidTransition, scheduling.ErrCode(err))
}

func TestCancelReleasesSlotForRebooking(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionCancel})
	require.NoError(t, err)

	// Cancellation is a status change, not a delete; the slot frees up.
	rebooked, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)
	assert.NotEqual(t, appt.ID, rebooked.ID)

	kept, err := svc.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, kept.Status)
}

func TestRescheduleMovesToNewSlot(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	moved, err := svc.Transition(ctx, appt.ID, models.TransitionRequest{
		Action: ActionReschedule,
		Date:   testDate,
		Slot:   &models.ClockRange{Start: "11:00", End: "11:30"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, moved.Status)
	assert.Equal(t, "11:00", moved.TimeSlot.Start)
}

func TestRescheduleIntoOccupiedSlotFails(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)
	_, err = svc.Book(ctx, bookReq("09:30", "10:00"), "")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, a.ID, models.TransitionRequest{
		Action: ActionReschedule,
		Date:   testDate,
		Slot:   &models.ClockRange{Start: "09:30", End: "10:00"},
	})
	assert.Equal(t, scheduling.CodeSlotUnavailable, scheduling.ErrCode(err))

	// A must be unchanged at its original slot.
	unchanged, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", unchanged.TimeSlot.Start)
	assert.Equal(t, testDate, unchanged.Date)
	assert.Equal(t, models.StatusPending, unchanged.Status)
}

func TestRescheduleRequiresPayload(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionReschedule})
	assert.Equal(t, scheduling.CodeValidation, scheduling.ErrCode(err))
}

func TestRequestRescheduleThenConfirm(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, bookReq("09:00", "09:30"), "")
	require.NoError(t, err)

	requested, err := svc.Transition(ctx, appt.ID, models.TransitionRequest{Action: ActionRequestReschedule})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRescheduleRequested, requested.Status)

	moved, err := svc.Transition(ctx, appt.ID, models.TransitionRequest{
		Action: ActionReschedule,
		Date:   testDate,
		Slot:   &models.ClockRange{Start: "10:30", End: "11:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, moved.Status)
}

func TestUnknownActionFails(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Transition(context.Background(), "whatever", models.TransitionRequest{Action: "archive"})
	assert.Equal(t, scheduling.CodeValidation, scheduling.ErrCode(err))
}

func TestTransitionUnknownAppointment(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Transition(context.Background(), "missing", models.TransitionRequest{Action: ActionConfirm})
	assert.Equal(t, scheduling.CodeValidation, scheduling.ErrCode(err))
}
