package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"
)

// ErrEventNotFound is returned by gateways when an event id does not
// resolve on the remote calendar.
var ErrEventNotFound = errors.New("calendar event not found")

type EventInput struct {
	Start       time.Time
	End         time.Time
	Title       string
	Description string
}

// EventRef identifies a remote event as the provider reported it.
type EventRef struct {
	Link string
	ID   string
}

// CalendarGateway is the remote calendar as seen by the scheduler.
type CalendarGateway interface {
	// ListEventsForDay returns the busy intervals of timed events that
	// intersect [day, day+24h).
	ListEventsForDay(ctx context.Context, day time.Time) ([]slot.Interval, error)

	CreateEvent(ctx context.Context, in EventInput) (EventRef, error)

	UpdateEvent(ctx context.Context, eventID string, in EventInput) (EventRef, error)

	DeleteEvent(ctx context.Context, eventID string) error
}
