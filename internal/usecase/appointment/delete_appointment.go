package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

type DeleteAppointmentInput struct {
	AppointmentID uint

	// EventID, when set, must match the event stored on the appointment.
	EventID string
}

type DeleteAppointmentResult struct {
	// RemoteDeleted is false when the calendar event was already gone.
	RemoteDeleted bool
}

type DeleteAppointment struct {
	orchestrator *Orchestrator
	store        domain.Store
	audit        *audit.Dispatcher
	log          *zap.Logger
}

func NewDeleteAppointment(
	orchestrator *Orchestrator,
	store domain.Store,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *DeleteAppointment {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeleteAppointment{
		orchestrator: orchestrator,
		store:        store,
		audit:        audit,
		log:          log,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	in DeleteAppointmentInput,
) (*DeleteAppointmentResult, error) {

	if in.AppointmentID == 0 {
		return nil, httperr.InvalidInput(CodeMissingAppointment)
	}

	ap, err := uc.store.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, storeError(err)
	}
	if ap == nil {
		return nil, httperr.ErrBusiness(httperr.KindNotFound, CodeAppointmentNotFound)
	}
	eventID, err := ownedEventID(ap, in.EventID)
	if err != nil {
		return nil, err
	}

	deleted, err := uc.orchestrator.DeleteMeeting(ctx, eventID)
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			return nil, err
		}
		// The event is already gone; the local row is now orphaned.
		uc.log.Warn("calendar event missing, removing local appointment",
			zap.Uint("appointment_id", in.AppointmentID),
			zap.String("event_id", eventID),
		)
	}

	if err := uc.store.DeleteAppointment(ctx, in.AppointmentID); err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.Wrap(httperr.KindNotFound, CodeAppointmentNotFound, err)
		}
		return nil, storeError(err)
	}

	id := in.AppointmentID
	uc.audit.Dispatch(audit.Event{
		Action:   "meeting_deleted",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{
			"event_id":       eventID,
			"remote_deleted": deleted,
		},
	})

	return &DeleteAppointmentResult{RemoteDeleted: deleted}, nil
}
