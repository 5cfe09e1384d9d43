package appointment

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/notification"
)

// memAppointmentRepo mimics the Mongo repository's atomic guarantees: the
// unique active-slot constraint and conditional status writes, all under one
// mutex so concurrent bookings serialize exactly like the partial unique
// index does.
type memAppointmentRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.Appointment
	order []string
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{byID: map[string]*models.Appointment{}}
}

func (m *memAppointmentRepo) slotTaken(doctorID, date, start, excludeID string) bool {
	for _, a := range m.byID {
		if a.ID == excludeID {
			continue
		}
		if a.Active && a.DoctorID == doctorID && a.Date == date && a.TimeSlot.Start == start {
			return true
		}
	}
	return false
}

func (m *memAppointmentRepo) Create(_ context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	appt.Active = appt.Status != models.StatusCancelled
	if appt.Active && m.slotTaken(appt.DoctorID, appt.Date, appt.TimeSlot.Start, "") {
		return appointmentRepo.ErrDuplicateSlot
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	stored := *appt
	m.byID[appt.ID] = &stored
	m.order = append(m.order, appt.ID)
	return nil
}

func (m *memAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (m *memAppointmentRepo) GetByNumber(_ context.Context, number string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.byID {
		if a.Number == number {
			cp := *a
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memAppointmentRepo) GetActiveByDoctorAndDate(_ context.Context, doctorID, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Appointment
	for _, id := range m.order {
		a := m.byID[id]
		if a.Active && a.DoctorID == doctorID && a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) ListByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Appointment
	for _, id := range m.order {
		if a := m.byID[id]; a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) UpdateStatus(_ context.Context, id string, from []string, to string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[id]
	if !ok || !contains(from, a.Status) {
		return nil, appointmentRepo.ErrNoMatch
	}
	a.Status = to
	a.Active = to != models.StatusCancelled
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (m *memAppointmentRepo) Reschedule(_ context.Context, id string, from []string, date string, slot models.ClockRange) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[id]
	if !ok || !contains(from, a.Status) {
		return nil, appointmentRepo.ErrNoMatch
	}
	if m.slotTaken(a.DoctorID, date, slot.Start, id) {
		return nil, appointmentRepo.ErrDuplicateSlot
	}
	a.Date = date
	a.TimeSlot = slot
	a.Status = models.StatusConfirmed
	a.Active = true
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (m *memAppointmentRepo) EnsureIndexes() error { return nil }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// fakePublisher records emitted events.
type fakePublisher struct {
	mu        sync.Mutex
	events    []notification.Event
	reminders []notification.Event
}

func (p *fakePublisher) Publish(_ context.Context, e notification.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) ScheduleReminder(_ context.Context, e notification.Event, _ time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reminders = append(p.reminders, e)
	return nil
}

func (p *fakePublisher) eventCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// Read-side fakes for the scheduling engine.

type memDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (f *memDoctorRepo) Create(_ context.Context, d *models.Doctor) error {
	f.doctors[d.ID] = d
	return nil
}

func (f *memDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return d, nil
}

func (f *memDoctorRepo) UpdateTemplate(_ context.Context, id string, tpl models.WeeklyTemplate, slotMinutes int) error {
	d, ok := f.doctors[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	d.Template = tpl
	if slotMinutes > 0 {
		d.SlotMinutes = slotMinutes
	}
	return nil
}

func (f *memDoctorRepo) AddBlockedDate(_ context.Context, id, date string) error {
	d, ok := f.doctors[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	d.BlockedDates = append(d.BlockedDates, date)
	return nil
}

func (f *memDoctorRepo) RemoveBlockedDate(_ context.Context, id, date string) error {
	d, ok := f.doctors[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	var kept []string
	for _, b := range d.BlockedDates {
		if b != date {
			kept = append(kept, b)
		}
	}
	d.BlockedDates = kept
	return nil
}

func (f *memDoctorRepo) EnsureIndexes() error { return nil }

type memOverrideRepo struct {
	overrides map[string]*models.DateOverride
}

func (f *memOverrideRepo) Upsert(_ context.Context, o *models.DateOverride) (*models.DateOverride, error) {
	f.overrides[o.DoctorID+"|"+o.Date] = o
	return o, nil
}

func (f *memOverrideRepo) GetByDoctorAndDate(_ context.Context, doctorID, date string) (*models.DateOverride, error) {
	o, ok := f.overrides[doctorID+"|"+date]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return o, nil
}

func (f *memOverrideRepo) ListByDoctor(_ context.Context, doctorID string) ([]models.DateOverride, error) {
	var out []models.DateOverride
	for _, o := range f.overrides {
		if o.DoctorID == doctorID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *memOverrideRepo) DeleteByDoctorAndDate(_ context.Context, doctorID, date string) error {
	key := doctorID + "|" + date
	if _, ok := f.overrides[key]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.overrides, key)
	return nil
}

func (f *memOverrideRepo) EnsureIndexes() error { return nil }
