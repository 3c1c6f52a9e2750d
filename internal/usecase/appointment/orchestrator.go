package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
)

const (
	DefaultTitle       = "Meeting"
	DefaultUpdateTitle = "Updated Meeting"
)

// Orchestrator turns booking requests into calendar events. It localizes
// timestamps to the configured zone and never retries.
type Orchestrator struct {
	gateway domain.CalendarGateway
	loc     *time.Location
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewOrchestrator(
	gateway domain.CalendarGateway,
	loc *time.Location,
	logger *zap.Logger,
) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		gateway: gateway,
		loc:     loc,
		log:     logger,
	}
}

// WithMetrics attaches collectors for gateway failures.
func (o *Orchestrator) WithMetrics(m *metrics.Metrics) *Orchestrator {
	o.metrics = m
	return o
}

func (o *Orchestrator) Location() *time.Location {
	return o.loc
}

func (o *Orchestrator) eventInput(start, end time.Time, title, fallback, description string) (domain.EventInput, error) {
	iv, err := slot.NewInterval(start.In(o.loc), end.In(o.loc))
	if err != nil {
		return domain.EventInput{}, err
	}
	if title == "" {
		title = fallback
	}
	return domain.EventInput{
		Start:       iv.Start(),
		End:         iv.End(),
		Title:       title,
		Description: description,
	}, nil
}

func (o *Orchestrator) BookMeeting(
	ctx context.Context,
	start time.Time,
	end time.Time,
	title string,
	description string,
) (domain.EventRef, error) {

	in, err := o.eventInput(start, end, title, DefaultTitle, description)
	if err != nil {
		return domain.EventRef{}, err
	}

	ref, err := o.gateway.CreateEvent(ctx, in)
	if err != nil {
		o.log.Warn("calendar create failed", zap.Time("start", in.Start), zap.Error(err))
		return domain.EventRef{}, gatewayError(o.metrics, "create", err)
	}

	o.log.Debug("calendar event created", zap.String("event_id", ref.ID))
	return ref, nil
}

func (o *Orchestrator) UpdateMeeting(
	ctx context.Context,
	eventID string,
	start time.Time,
	end time.Time,
	title string,
	description string,
) (domain.EventRef, error) {

	in, err := o.eventInput(start, end, title, DefaultUpdateTitle, description)
	if err != nil {
		return domain.EventRef{}, err
	}

	ref, err := o.gateway.UpdateEvent(ctx, eventID, in)
	if err != nil {
		o.log.Warn("calendar update failed", zap.String("event_id", eventID), zap.Error(err))
		return domain.EventRef{}, gatewayError(o.metrics, "update", err)
	}
	if ref.ID == "" {
		ref.ID = eventID
	}
	return ref, nil
}

// DeleteMeeting reports whether the remote event was removed, and why not
// when it was not.
func (o *Orchestrator) DeleteMeeting(
	ctx context.Context,
	eventID string,
) (bool, error) {

	if err := o.gateway.DeleteEvent(ctx, eventID); err != nil {
		o.log.Warn("calendar delete failed", zap.String("event_id", eventID), zap.Error(err))
		return false, gatewayError(o.metrics, "delete", err)
	}
	return true, nil
}
