package appointment

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
)

const actionInconsistency = "booking_inconsistency"

// reportPartial records a remote event left without its local record so it
// can be reconciled from the logs, the audit trail or the metrics.
func reportPartial(
	log *zap.Logger,
	dispatcher *audit.Dispatcher,
	m *metrics.Metrics,
	operation string,
	pe *httperr.PartialBookingError,
) error {

	log.Error("calendar event has no local record",
		zap.String("operation", operation),
		zap.String("event_id", pe.EventID),
		zap.Uint("user_id", pe.UserID),
		zap.String("date", pe.Date),
		zap.String("start_time", pe.StartTime),
		zap.Error(pe.Err),
	)

	dispatcher.Dispatch(audit.Event{
		Action: actionInconsistency,
		Entity: "appointment",
		Metadata: map[string]any{
			"operation":  operation,
			"event_id":   pe.EventID,
			"event_link": pe.EventLink,
			"user_id":    pe.UserID,
			"date":       pe.Date,
			"start_time": pe.StartTime,
		},
	})

	m.IncPartialBooking()
	return pe
}
