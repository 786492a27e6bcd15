package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"garatge-booking/internal/booking"
	"garatge-booking/internal/data/entity"
	"garatge-booking/internal/data/repository"
	"garatge-booking/internal/dto/request"
	"garatge-booking/internal/dto/response"
	"garatge-booking/pkg/gcal"
	"garatge-booking/pkg/mailer"
	"garatge-booking/pkg/upload"
	"garatge-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxAttachments = 3

type AppointmentService interface {
	AvailableSlots(ctx context.Context, date string) (*response.SlotsResponse, error)
	CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest, attachments []upload.Attachment) (*response.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, token string) error
}

type appointmentService struct {
	repo     *repository.Repository
	cal      gcal.Calendar
	mail     mailer.Mailer
	uploader upload.Uploader
	config   *utils.Config
	log      *zap.Logger
}

func NewAppointmentService(repo *repository.Repository, cal gcal.Calendar, mail mailer.Mailer, uploader upload.Uploader, config *utils.Config, log *zap.Logger) AppointmentService {
	return &appointmentService{
		repo:     repo,
		cal:      cal,
		mail:     mail,
		uploader: uploader,
		config:   config,
		log:      log.With(zap.String("service", "appointment")),
	}
}

func (s *appointmentService) AvailableSlots(ctx context.Context, date string) (*response.SlotsResponse, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid date %s", date)}
	}

	booked, err := s.repo.Appointment.BookedTimes(ctx, day)
	if err != nil {
		return nil, &PersistenceError{Op: "list booked times", Err: err}
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(s.config.Booking.WorkshopSlots))
	for _, slot := range s.config.Booking.WorkshopSlots {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return &response.SlotsResponse{Date: date, Slots: free}, nil
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest, attachments []upload.Attachment) (*response.AppointmentResponse, error) {
	// 1. Validate input; no side effects on failure.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create appointment validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Msg: "validation failed", Fields: errs}
	}

	if len(attachments) > maxAttachments {
		return nil, &ValidationError{Msg: fmt.Sprintf("at most %d attachments are allowed", maxAttachments)}
	}

	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid date %s", req.Date)}
	}

	if !s.slotExists(req.Time) {
		return nil, &ValidationError{Msg: fmt.Sprintf("time %s is not a bookable slot", req.Time)}
	}

	// 2. Lead-time rule: the workshop needs a few days of notice.
	minDate := booking.StartOfDay(time.Now().UTC()).AddDate(0, 0, s.config.Booking.MinLeadDays)
	if date.Before(minDate) {
		return nil, &SchedulingError{Msg: fmt.Sprintf("appointments require at least %d days of notice", s.config.Booking.MinLeadDays)}
	}

	// 3. Slot availability: exact (date, time) equality.
	taken, err := s.repo.Appointment.SlotTaken(ctx, date, req.Time)
	if err != nil {
		return nil, &PersistenceError{Op: "check appointment slot", Err: err}
	}
	if taken {
		return nil, &ConflictError{Msg: fmt.Sprintf("the %s slot is no longer available", req.Time)}
	}

	// 4. Upload attachments before persisting, tolerating individual
	// failures. All failing when files were sent aborts the request.
	attachmentURLs, err := s.uploadAttachments(ctx, req.Name, attachments)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateCancellationToken()
	if err != nil {
		return nil, &PersistenceError{Op: "generate cancellation token", Err: err}
	}

	now := time.Now()
	appointment := &entity.Appointment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		VehicleBrand:   req.VehicleBrand,
		VehicleModel:   req.VehicleModel,
		Service:        req.Service,
		Date:           date,
		Time:           req.Time,
		Message:        req.Message,
		Status:         entity.ReservationStatusPending,
		CancelToken:    token,
		AttachmentURLs: attachmentURLs,
	}

	// 5. Persist; failure here is fatal to the whole operation.
	if err := s.repo.Appointment.Create(ctx, appointment); err != nil {
		return nil, &PersistenceError{Op: "create appointment", Err: err}
	}

	// 6. Calendar sync: non-fatal.
	var warnings []string
	if event, calErr := s.cal.CreateSlotEvent(ctx, s.buildSlotEvent(appointment)); calErr != nil {
		s.log.Warn("Calendar sync failed, appointment kept",
			zap.Error(calErr),
			zap.String("appointment_id", appointment.ID.String()),
		)
		warnings = append(warnings, "calendar sync failed")
	} else {
		appointment.GoogleEventID = event.ID
		appointment.GoogleEventLink = event.HTMLLink
		if err := s.repo.Appointment.AttachCalendarEvent(ctx, appointment.ID, event.ID, event.HTMLLink); err != nil {
			s.log.Warn("Failed to store calendar event link", zap.Error(err))
		}
	}

	// 7. Notifications: best-effort, independent.
	for _, msg := range []mailer.Message{
		appointmentCustomerEmail(appointment, s.config),
		appointmentAdminEmail(appointment, s.config),
	} {
		if err := s.mail.Send(ctx, msg); err != nil {
			s.log.Warn("Notification email failed", zap.Error(err), zap.String("to", msg.To))
			warnings = append(warnings, fmt.Sprintf("email to %s failed", msg.To))
		}
	}

	s.log.Info("Appointment created",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("service", appointment.Service),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.Int("attachments", len(attachmentURLs)),
	)

	return &response.AppointmentResponse{
		ID:             appointment.ID.String(),
		Date:           req.Date,
		Time:           req.Time,
		Service:        req.Service,
		Status:         string(appointment.Status),
		CalendarLink:   appointment.GoogleEventLink,
		AttachmentURLs: attachmentURLs,
		Warnings:       warnings,
		CreatedAt:      appointment.CreatedAt,
	}, nil
}

func (s *appointmentService) CancelAppointment(ctx context.Context, token string) error {
	if token == "" {
		return &ValidationError{Msg: "missing cancellation token"}
	}

	appointment, err := s.repo.Appointment.FindByToken(ctx, token)
	if err != nil {
		return &PersistenceError{Op: "find appointment by token", Err: err}
	}
	if appointment == nil {
		return &NotFoundError{Msg: "appointment not found"}
	}

	if appointment.GoogleEventID != "" {
		if err := s.cal.DeleteEvent(ctx, appointment.GoogleEventID); err != nil {
			s.log.Warn("Failed to delete calendar event, continuing cancellation",
				zap.Error(err),
				zap.String("event_id", appointment.GoogleEventID),
			)
		}
	}

	if err := s.repo.Appointment.Delete(ctx, appointment.ID); err != nil {
		return &PersistenceError{Op: "delete appointment", Err: err}
	}

	if err := s.mail.Send(ctx, appointmentCancelledAdminEmail(appointment, s.config)); err != nil {
		s.log.Warn("Failed to send cancellation notification", zap.Error(err))
	}

	s.log.Info("Appointment cancelled",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("service", appointment.Service),
	)
	return nil
}

// ==================== HELPER METHODS ====================

func (s *appointmentService) slotExists(t string) bool {
	for _, slot := range s.config.Booking.WorkshopSlots {
		if slot == t {
			return true
		}
	}
	return false
}

func (s *appointmentService) uploadAttachments(ctx context.Context, customer string, attachments []upload.Attachment) ([]string, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	var (
		mu   sync.Mutex
		urls []string
		wg   sync.WaitGroup
	)
	for i, att := range attachments {
		wg.Add(1)
		go func(i int, att upload.Attachment) {
			defer wg.Done()
			publicID := fmt.Sprintf("appointment_%s_%d_%d", customer, i, time.Now().UnixNano())
			url, err := s.uploader.Upload(ctx, att, publicID)
			if err != nil || url == "" {
				s.log.Warn("Attachment upload failed",
					zap.Error(err),
					zap.String("filename", att.Filename),
				)
				return
			}
			mu.Lock()
			urls = append(urls, url)
			mu.Unlock()
		}(i, att)
	}
	wg.Wait()

	if len(urls) == 0 {
		return nil, &UpstreamError{Service: "upload", Err: fmt.Errorf("no attachment could be uploaded")}
	}
	return urls, nil
}

func (s *appointmentService) buildSlotEvent(a *entity.Appointment) gcal.SlotEvent {
	start := a.Date
	if t, err := time.Parse("15:04", a.Time); err == nil {
		start = time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), t.Hour(), t.Minute(), 0, 0, a.Date.Location())
	}

	return gcal.SlotEvent{
		Summary: fmt.Sprintf("Cita: %s - %s", a.Service, a.Name),
		Description: fmt.Sprintf("Client: %s\nEmail: %s\nTelèfon: %s\nVehicle: %s %s\nServei: %s\n\nMissatge: %s",
			a.Name, a.Email, a.Phone, a.VehicleBrand, a.VehicleModel, a.Service, a.Message),
		Start:         start,
		Duration:      time.Hour,
		AttendeeEmail: a.Email,
		AttendeeName:  a.Name,
	}
}
