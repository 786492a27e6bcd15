package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"garatge-booking/internal/data/entity"
	"garatge-booking/internal/data/repository"
	"garatge-booking/pkg/gcal"
	"garatge-booking/pkg/mailer"
	"garatge-booking/pkg/upload"
	"garatge-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes standing in for the Postgres repositories and the
// external providers. Each one records what was asked of it and can be
// told to fail.

type fakeResourceRepo struct {
	resources map[uuid.UUID]*entity.Resource
	err       error
}

func (f *fakeResourceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resources[id], nil
}

func (f *fakeResourceRepo) FindByKind(_ context.Context, kind entity.ResourceKind) ([]*entity.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Resource
	for _, r := range f.resources {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []*entity.Reservation
	createErr    error
	findErr      error
	deleteErr    error
}

func (f *fakeReservationRepo) Create(_ context.Context, r *entity.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations = append(f.reservations, r)
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByToken(_ context.Context, token string) (*entity.Reservation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.CancelToken == token {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindActiveByResource(_ context.Context, resourceID uuid.UUID) ([]*entity.Reservation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Reservation
	for _, r := range f.reservations {
		if r.ResourceID == resourceID && r.Status.Blocks() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) AttachCalendarEvent(_ context.Context, id uuid.UUID, eventID, eventLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.ID == id {
			r.GoogleEventID = eventID
			r.GoogleEventLink = eventLink
			return nil
		}
	}
	return fmt.Errorf("reservation %s not found", id)
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.reservations {
		if r.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []*entity.Appointment
	createErr    error
	findErr      error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments = append(f.appointments, a)
	return nil
}

func (f *fakeAppointmentRepo) FindByToken(_ context.Context, token string) (*entity.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.CancelToken == token {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) SlotTaken(_ context.Context, date time.Time, slot string) (bool, error) {
	if f.findErr != nil {
		return false, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.Date.Equal(date) && a.Time == slot && a.Status.Blocks() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) BookedTimes(_ context.Context, date time.Time) ([]string, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, a := range f.appointments {
		if a.Date.Equal(date) && a.Status.Blocks() {
			out = append(out, a.Time)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) AttachCalendarEvent(_ context.Context, id uuid.UUID, eventID, eventLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.ID == id {
			a.GoogleEventID = eventID
			a.GoogleEventLink = eventLink
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.appointments {
		if a.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCalendar struct {
	createErr error
	deleteErr error
	created   []string
	deleted   []string
}

func (f *fakeCalendar) CreateRangeEvent(_ context.Context, ev gcal.RangeEvent) (*gcal.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, ev.Summary)
	return &gcal.Event{ID: "evt-1", HTMLLink: "https://calendar.google.com/event?eid=evt-1"}, nil
}

func (f *fakeCalendar) CreateSlotEvent(_ context.Context, ev gcal.SlotEvent) (*gcal.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, ev.Summary)
	return &gcal.Event{ID: "evt-2", HTMLLink: "https://calendar.google.com/event?eid=evt-2"}, nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []mailer.Message
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) sentTo(addr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.sent {
		if m.To == addr {
			return true
		}
	}
	return false
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeUploader struct {
	mu       sync.Mutex
	err      error
	blankURL bool
	uploads  []string
}

func (f *fakeUploader) Upload(_ context.Context, _ upload.Attachment, publicID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.blankURL {
		return "", nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, publicID)
	return "https://res.cloudinary.com/garatge/" + publicID, nil
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:    "garatge-booking",
			BaseURL: "https://garatgeestacio.test",
		},
		Booking: utils.BookingConfig{
			MinLeadDays:      3,
			WorkshopSlots:    []string{"09:00", "10:00", "11:00", "12:00", "15:00", "16:00", "17:00"},
			CancelSuccessURL: "https://garatgeestacio.test/cancellacio-exitosa",
			CancelErrorURL:   "https://garatgeestacio.test/cancellacio-error",
		},
		Email: utils.EmailConfig{
			From:       "reserves@garatgeestacio.test",
			AdminEmail: "taller@garatgeestacio.test",
		},
	}
}

func testRepo(res *fakeResourceRepo, rsv *fakeReservationRepo, apt *fakeAppointmentRepo) *repository.Repository {
	if res == nil {
		res = &fakeResourceRepo{}
	}
	if rsv == nil {
		rsv = &fakeReservationRepo{}
	}
	if apt == nil {
		apt = &fakeAppointmentRepo{}
	}
	return &repository.Repository{
		Resource:    res,
		Reservation: rsv,
		Appointment: apt,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
