// Package calendar implements the calendar gateway on Google Calendar v3.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"
)

const DefaultCalendarID = "primary"

type Options struct {
	CalendarID string
	Location   *time.Location

	// HTTPClient must already carry credentials.
	HTTPClient *http.Client

	// Endpoint overrides the API base URL.
	Endpoint string
}

type GoogleGateway struct {
	service    *gcal.Service
	calendarID string
	loc        *time.Location
}

func NewGoogleGateway(ctx context.Context, o Options) (*GoogleGateway, error) {
	if o.HTTPClient == nil {
		return nil, errors.New("calendar: http client is required")
	}
	if o.Location == nil {
		return nil, errors.New("calendar: location is required")
	}
	if o.CalendarID == "" {
		o.CalendarID = DefaultCalendarID
	}

	opts := []option.ClientOption{option.WithHTTPClient(o.HTTPClient)}
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint))
	}

	srv, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %w", err)
	}

	return &GoogleGateway{
		service:    srv,
		calendarID: o.CalendarID,
		loc:        o.Location,
	}, nil
}

// classify marks missing events so callers can tell them from outages.
func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) &&
		(gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone) {
		return fmt.Errorf("%s event: %w: %w", op, domain.ErrEventNotFound, err)
	}
	return fmt.Errorf("%s event: %w", op, err)
}

func (g *GoogleGateway) dateTime(t time.Time) *gcal.EventDateTime {
	return &gcal.EventDateTime{
		DateTime: t.In(g.loc).Format(time.RFC3339),
		TimeZone: g.loc.String(),
	}
}

func (g *GoogleGateway) fill(ev *gcal.Event, in domain.EventInput) {
	ev.Summary = in.Title
	ev.Description = in.Description
	ev.Start = g.dateTime(in.Start)
	ev.End = g.dateTime(in.End)
	ev.Reminders = &gcal.EventReminders{UseDefault: true}
}

// ListEventsForDay skips all-day events: they carry a date, not a dateTime.
func (g *GoogleGateway) ListEventsForDay(ctx context.Context, day time.Time) ([]slot.Interval, error) {
	call := g.service.Events.List(g.calendarID).
		TimeMin(day.Format(time.RFC3339)).
		TimeMax(day.Add(24 * time.Hour).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	var busy []slot.Interval
	err := call.Pages(ctx, func(page *gcal.Events) error {
		for _, ev := range page.Items {
			iv, ok := g.interval(ev)
			if ok {
				busy = append(busy, iv)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return busy, nil
}

func (g *GoogleGateway) interval(ev *gcal.Event) (slot.Interval, bool) {
	if ev.Start == nil || ev.End == nil || ev.Start.DateTime == "" || ev.End.DateTime == "" {
		return slot.Interval{}, false
	}
	start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
	if err != nil {
		return slot.Interval{}, false
	}
	end, err := time.Parse(time.RFC3339, ev.End.DateTime)
	if err != nil {
		return slot.Interval{}, false
	}
	iv, err := slot.NewInterval(start.In(g.loc), end.In(g.loc))
	if err != nil {
		return slot.Interval{}, false
	}
	return iv, true
}

func (g *GoogleGateway) CreateEvent(ctx context.Context, in domain.EventInput) (domain.EventRef, error) {
	ev := &gcal.Event{}
	g.fill(ev, in)

	created, err := g.service.Events.Insert(g.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return domain.EventRef{}, classify("create", err)
	}
	return domain.EventRef{Link: created.HtmlLink, ID: created.Id}, nil
}

// UpdateEvent reads the event first so fields this service does not manage
// (attendees, location, colour) survive the update.
func (g *GoogleGateway) UpdateEvent(ctx context.Context, eventID string, in domain.EventInput) (domain.EventRef, error) {
	existing, err := g.service.Events.Get(g.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return domain.EventRef{}, classify("get", err)
	}

	g.fill(existing, in)

	updated, err := g.service.Events.Update(g.calendarID, eventID, existing).Context(ctx).Do()
	if err != nil {
		return domain.EventRef{}, classify("update", err)
	}
	return domain.EventRef{Link: updated.HtmlLink, ID: updated.Id}, nil
}

func (g *GoogleGateway) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.service.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return classify("delete", err)
	}
	return nil
}

// Compile-time check
var _ domain.CalendarGateway = (*GoogleGateway)(nil)
