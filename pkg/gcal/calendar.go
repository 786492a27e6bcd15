// Package gcal wraps the Google Calendar v3 API for booking events.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Event is the subset of a created calendar event the service keeps.
type Event struct {
	ID       string
	HTMLLink string
}

// RangeEvent is an all-day event spanning [Start, End] inclusive.
type RangeEvent struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	AttendeeName  string
}

// SlotEvent is a timed event starting at Start.
type SlotEvent struct {
	Summary       string
	Description   string
	Start         time.Time
	Duration      time.Duration
	AttendeeEmail string
	AttendeeName  string
}

// Calendar creates and deletes booking events. DeleteEvent treats an
// already-deleted event as success.
type Calendar interface {
	CreateRangeEvent(ctx context.Context, ev RangeEvent) (*Event, error)
	CreateSlotEvent(ctx context.Context, ev SlotEvent) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Config carries the OAuth2 refresh-token credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
	TimeZone     string
}

type googleCalendar struct {
	svc        *calendar.Service
	calendarID string
	timeZone   string
	log        *zap.Logger
}

func NewGoogleCalendar(ctx context.Context, cfg Config, log *zap.Logger) (Calendar, error) {
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarEventsScope},
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("init calendar service: %w", err)
	}

	return &googleCalendar{
		svc:        svc,
		calendarID: cfg.CalendarID,
		timeZone:   cfg.TimeZone,
		log:        log.With(zap.String("component", "gcal")),
	}, nil
}

func (c *googleCalendar) CreateRangeEvent(ctx context.Context, ev RangeEvent) (*Event, error) {
	// Google excludes the end date of all-day events, hence the +1 day.
	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{Date: ev.Start.Format("2006-01-02")},
		End:         &calendar.EventDateTime{Date: ev.End.AddDate(0, 0, 1).Format("2006-01-02")},
	}
	if ev.AttendeeEmail != "" {
		event.Attendees = []*calendar.EventAttendee{{Email: ev.AttendeeEmail, DisplayName: ev.AttendeeName}}
	}

	return c.insert(ctx, event)
}

func (c *googleCalendar) CreateSlotEvent(ctx context.Context, ev SlotEvent) (*Event, error) {
	end := ev.Start.Add(ev.Duration)

	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: c.timeZone},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: c.timeZone},
	}
	if ev.AttendeeEmail != "" {
		event.Attendees = []*calendar.EventAttendee{{Email: ev.AttendeeEmail, DisplayName: ev.AttendeeName}}
	}

	return c.insert(ctx, event)
}

func (c *googleCalendar) insert(ctx context.Context, event *calendar.Event) (*Event, error) {
	created, err := c.svc.Events.Insert(c.calendarID, event).SendUpdates("none").Context(ctx).Do()
	if err != nil {
		c.log.Error("Failed to create calendar event",
			zap.Error(err),
			zap.String("summary", event.Summary),
		)
		return nil, fmt.Errorf("create calendar event: %w", err)
	}

	c.log.Info("Calendar event created",
		zap.String("event_id", created.Id),
		zap.String("summary", event.Summary),
	)
	return &Event{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

func (c *googleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.svc.Events.Delete(c.calendarID, eventID).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		// 404/410 mean the event is already gone, which is what we want.
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && (gerr.Code == 404 || gerr.Code == 410) {
			c.log.Warn("Calendar event already deleted", zap.String("event_id", eventID))
			return nil
		}
		c.log.Error("Failed to delete calendar event",
			zap.Error(err),
			zap.String("event_id", eventID),
		)
		return fmt.Errorf("delete calendar event %s: %w", eventID, err)
	}

	c.log.Info("Calendar event deleted", zap.String("event_id", eventID))
	return nil
}
