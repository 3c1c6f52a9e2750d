package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
)

type UpdateAppointmentInput struct {
	AppointmentID uint
	StartTime     string
	Title         string
	Description   string

	// EventID, when set, must match the event stored on the appointment.
	EventID string
}

type UpdateAppointmentResult struct {
	EventID string
	Link    string
}

type UpdateAppointment struct {
	orchestrator    *Orchestrator
	store           domain.Store
	audit           *audit.Dispatcher
	defaultDuration time.Duration
	log             *zap.Logger
	metrics         *metrics.Metrics
}

func NewUpdateAppointment(
	orchestrator *Orchestrator,
	store domain.Store,
	audit *audit.Dispatcher,
	defaultDuration time.Duration,
	log *zap.Logger,
	m *metrics.Metrics,
) *UpdateAppointment {
	if log == nil {
		log = zap.NewNop()
	}
	return &UpdateAppointment{
		orchestrator:    orchestrator,
		store:           store,
		audit:           audit,
		defaultDuration: defaultDuration,
		log:             log,
		metrics:         m,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*UpdateAppointmentResult, error) {

	if in.AppointmentID == 0 {
		return nil, httperr.InvalidInput(CodeMissingAppointment)
	}
	if in.StartTime == "" {
		return nil, httperr.InvalidInput(CodeMissingStartTime)
	}

	ap, err := uc.store.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, storeError(err)
	}
	if ap == nil {
		return nil, httperr.ErrBusiness(httperr.KindNotFound, CodeAppointmentNotFound)
	}

	loc := uc.orchestrator.Location()
	start, err := parseTimestamp(loc, in.StartTime)
	if err != nil {
		return nil, err
	}
	end := domain.ResolveEnd(start, nil, uc.defaultDuration)

	eventID, err := ownedEventID(ap, in.EventID)
	if err != nil {
		return nil, err
	}
	description := in.Description
	if description == "" {
		description = ap.Description
	}

	ref, err := uc.orchestrator.UpdateMeeting(ctx, eventID, start, end, in.Title, description)
	if err != nil {
		return nil, err
	}

	date, clock := domain.SlotKey(start.In(loc))
	if err := uc.store.UpdateAppointment(ctx, ap.ID, date, clock, description, ref.ID); err != nil {
		return nil, reportPartial(uc.log, uc.audit, uc.metrics, "update", &httperr.PartialBookingError{
			EventID:   ref.ID,
			EventLink: ref.Link,
			UserID:    ap.UserID,
			Date:      date,
			StartTime: clock,
			Err:       err,
		})
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "meeting_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"event_id":   ref.ID,
			"date":       date,
			"start_time": clock,
		},
	})

	return &UpdateAppointmentResult{EventID: ref.ID, Link: ref.Link}, nil
}
