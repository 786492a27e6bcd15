package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"garatge-booking/internal/booking"
	"garatge-booking/internal/data/entity"
	"garatge-booking/internal/data/repository"
	"garatge-booking/internal/dto/request"
	"garatge-booking/internal/dto/response"
	"garatge-booking/pkg/gcal"
	"garatge-booking/pkg/mailer"
	"garatge-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type BookingService interface {
	ListResources(ctx context.Context, kind string) ([]response.ResourceResponse, error)
	GetAvailability(ctx context.Context, resourceID string) (*response.AvailabilityResponse, error)

	// CreateReservation runs the unified rental flow for vehicles and
	// motorhomes: validate, date sanity, availability, price, persist,
	// then best-effort calendar sync and notifications.
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)

	// CancelReservation is authorized solely by the cancellation token.
	CancelReservation(ctx context.Context, token string) error
}

const availabilityTTL = 5 * time.Minute

type bookingService struct {
	repo   *repository.Repository
	cal    gcal.Calendar
	mail   mailer.Mailer
	cache  *redis.Client // nil disables caching
	config *utils.Config
	log    *zap.Logger
	locks  resourceLocks
}

func NewBookingService(repo *repository.Repository, cal gcal.Calendar, mail mailer.Mailer, cache *redis.Client, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		cal:    cal,
		mail:   mail,
		cache:  cache,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// resourceLocks serializes check-then-persist per resource so two
// concurrent requests for the same dates cannot both pass the
// availability check. The overlap predicate itself is unchanged.
type resourceLocks struct {
	mu sync.Mutex
	m  map[uuid.UUID]*sync.Mutex
}

func (l *resourceLocks) get(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = make(map[uuid.UUID]*sync.Mutex)
	}
	lock, ok := l.m[id]
	if !ok {
		lock = &sync.Mutex{}
		l.m[id] = lock
	}
	return lock
}

func (s *bookingService) ListResources(ctx context.Context, kind string) ([]response.ResourceResponse, error) {
	k := entity.ResourceKind(kind)
	if k != entity.ResourceKindVehicle && k != entity.ResourceKindMotorhome {
		return nil, &ValidationError{Msg: fmt.Sprintf("unknown resource kind %q", kind)}
	}

	resources, err := s.repo.Resource.FindByKind(ctx, k)
	if err != nil {
		return nil, &PersistenceError{Op: "list resources", Err: err}
	}

	out := make([]response.ResourceResponse, len(resources))
	for i, res := range resources {
		out[i] = response.ResourceToResponse(res)
	}
	return out, nil
}

func (s *bookingService) GetAvailability(ctx context.Context, resourceID string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(resourceID)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid resource ID %s", resourceID)}
	}

	if dates, ok := s.cachedAvailability(ctx, id); ok {
		return &response.AvailabilityResponse{ResourceID: resourceID, BookedDates: dates}, nil
	}

	reservations, err := s.repo.Reservation.FindActiveByResource(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "get availability", Err: err}
	}

	// Expand every active reservation into its calendar days, deduped.
	seen := make(map[string]struct{})
	for _, res := range reservations {
		for _, day := range booking.DatesBetween(res.StartDate, res.EndDate) {
			seen[day.Format(booking.DateLayout)] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	s.storeAvailability(ctx, id, dates)

	return &response.AvailabilityResponse{ResourceID: resourceID, BookedDates: dates}, nil
}

func (s *bookingService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// 1. Validate input shape; no side effects on failure.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Msg: "validation failed", Fields: errs}
	}

	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid resource ID %s", req.ResourceID)}
	}

	start, err := booking.ParseDate(req.StartDate)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid start date %s", req.StartDate)}
	}
	end, err := booking.ParseDate(req.EndDate)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid end date %s", req.EndDate)}
	}
	if end.Before(start) {
		return nil, &ValidationError{Msg: "end date must not be before start date"}
	}

	resource, err := s.repo.Resource.FindByID(ctx, resourceID)
	if err != nil {
		return nil, &PersistenceError{Op: "find resource", Err: err}
	}
	if resource == nil {
		return nil, &NotFoundError{Msg: fmt.Sprintf("resource %s not found", req.ResourceID)}
	}

	// 2. Date sanity: a rental cannot start in the past.
	if start.Before(booking.StartOfDay(time.Now().UTC())) {
		return nil, &SchedulingError{Msg: "start date must not be in the past"}
	}

	// 3. Price by resource kind.
	var total float64
	var days int
	switch resource.Kind {
	case entity.ResourceKindMotorhome:
		total, days, err = booking.PriceMotorhome(start, end, resource.SeasonPricing)
		if err != nil {
			return nil, &ValidationError{Msg: err.Error()}
		}
	default:
		days = booking.DaysInclusive(start, end)
		total = booking.PriceVehicle(start, end, resource.TieredPricing)
	}

	token, err := utils.GenerateCancellationToken()
	if err != nil {
		return nil, &PersistenceError{Op: "generate cancellation token", Err: err}
	}

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ResourceID:    resourceID,
		ResourceName:  resource.Name,
		Kind:          resource.Kind,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartDate:     start,
		EndDate:       end,
		Days:          days,
		TotalPrice:    total,
		Status:        entity.ReservationStatusPending,
		CancelToken:   token,
	}

	// 4+5. Availability check and persist, serialized per resource so
	// two concurrent requests cannot both see the slot free.
	lock := s.locks.get(resourceID)
	lock.Lock()
	existing, err := s.repo.Reservation.FindActiveByResource(ctx, resourceID)
	if err != nil {
		lock.Unlock()
		return nil, &PersistenceError{Op: "check availability", Err: err}
	}

	if booking.HasConflict(booking.DateRange{Start: start, End: end}, existing) {
		lock.Unlock()
		return nil, &ConflictError{Msg: "the selected dates are no longer available"}
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		lock.Unlock()
		return nil, &PersistenceError{Op: "create reservation", Err: err}
	}
	lock.Unlock()

	s.invalidateAvailability(ctx, resourceID)

	// 6. Calendar sync: non-fatal, reservation stays valid without it.
	var warnings []string
	event, err := s.cal.CreateRangeEvent(ctx, gcal.RangeEvent{
		Summary:       fmt.Sprintf("Lloguer: %s - %s", resource.Name, req.CustomerName),
		Description:   fmt.Sprintf("Client: %s\nEmail: %s\nTelèfon: %s", req.CustomerName, req.CustomerEmail, req.CustomerPhone),
		Start:         start,
		End:           end,
		AttendeeEmail: req.CustomerEmail,
		AttendeeName:  req.CustomerName,
	})
	if err != nil {
		s.log.Warn("Calendar sync failed, reservation kept",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		warnings = append(warnings, "calendar sync failed")
	} else {
		reservation.GoogleEventID = event.ID
		reservation.GoogleEventLink = event.HTMLLink
		if err := s.repo.Reservation.AttachCalendarEvent(ctx, reservation.ID, event.ID, event.HTMLLink); err != nil {
			s.log.Warn("Failed to store calendar event link", zap.Error(err))
		}
	}

	// 7. Notifications: independent sends, neither blocks the other and
	// neither rolls back the committed reservation.
	warnings = append(warnings, s.sendAll(ctx,
		reservationCustomerEmail(reservation, s.config),
		reservationAdminEmail(reservation, s.config),
	)...)

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("resource", resource.Name),
		zap.String("kind", string(resource.Kind)),
		zap.Int("days", days),
		zap.Float64("total_price", total),
	)

	return &response.ReservationResponse{
		ID:           reservation.ID.String(),
		ResourceID:   resourceID.String(),
		ResourceName: resource.Name,
		Kind:         string(resource.Kind),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Days:         days,
		TotalPrice:   total,
		Status:       string(reservation.Status),
		CalendarLink: reservation.GoogleEventLink,
		Warnings:     warnings,
		CreatedAt:    reservation.CreatedAt,
	}, nil
}

func (s *bookingService) CancelReservation(ctx context.Context, token string) error {
	if token == "" {
		return &ValidationError{Msg: "missing cancellation token"}
	}

	reservation, err := s.repo.Reservation.FindByToken(ctx, token)
	if err != nil {
		return &PersistenceError{Op: "find reservation by token", Err: err}
	}
	if reservation == nil {
		// Unknown, expired and already-used tokens look identical.
		return &NotFoundError{Msg: "reservation not found"}
	}

	if reservation.GoogleEventID != "" {
		if err := s.cal.DeleteEvent(ctx, reservation.GoogleEventID); err != nil {
			s.log.Warn("Failed to delete calendar event, continuing cancellation",
				zap.Error(err),
				zap.String("event_id", reservation.GoogleEventID),
			)
		}
	}

	if err := s.repo.Reservation.Delete(ctx, reservation.ID); err != nil {
		return &PersistenceError{Op: "delete reservation", Err: err}
	}

	s.invalidateAvailability(ctx, reservation.ResourceID)

	if err := s.mail.Send(ctx, reservationCancelledAdminEmail(reservation, s.config)); err != nil {
		s.log.Warn("Failed to send cancellation notification", zap.Error(err))
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("resource", reservation.ResourceName),
	)
	return nil
}

// ==================== HELPER METHODS ====================

// sendAll dispatches each message concurrently; a failed send becomes a
// warning, never an error.
func (s *bookingService) sendAll(ctx context.Context, msgs ...mailer.Message) []string {
	var (
		mu       sync.Mutex
		warnings []string
		wg       sync.WaitGroup
	)
	for _, msg := range msgs {
		wg.Add(1)
		go func(m mailer.Message) {
			defer wg.Done()
			if err := s.mail.Send(ctx, m); err != nil {
				s.log.Warn("Notification email failed",
					zap.Error(err),
					zap.String("to", m.To),
				)
				mu.Lock()
				warnings = append(warnings, fmt.Sprintf("email to %s failed", m.To))
				mu.Unlock()
			}
		}(msg)
	}
	wg.Wait()
	return warnings
}

func availabilityKey(id uuid.UUID) string {
	return "booked:" + id.String()
}

func (s *bookingService) cachedAvailability(ctx context.Context, id uuid.UUID) ([]string, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, availabilityKey(id)).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("Availability cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var dates []string
	if err := json.Unmarshal([]byte(payload), &dates); err != nil {
		s.log.Warn("Availability cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return dates, true
}

func (s *bookingService) storeAvailability(ctx context.Context, id uuid.UUID, dates []string) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(dates)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, availabilityKey(id), payload, availabilityTTL).Err(); err != nil {
		s.log.Warn("Availability cache write failed", zap.Error(err))
	}
}

func (s *bookingService) invalidateAvailability(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, availabilityKey(id)).Err(); err != nil {
		s.log.Warn("Availability cache invalidation failed", zap.Error(err))
	}
}
