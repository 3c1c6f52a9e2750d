package appointment

import (
	"errors"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

const (
	CodeEventNotFound       = "event_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeUserNotFound        = "user_not_found"
	CodeCalendarUnavailable = "calendar_unavailable"
	CodeStoreFailure        = "store_failure"
	CodeBookingInProgress   = "booking_in_progress"
	CodeInvalidDateOrTime   = "invalid_date_or_time"
	CodeMissingStartTime    = "missing_start_time"
	CodeMissingAppointment  = "missing_appointment_id"
	CodeMissingUser         = "missing_user_id"
	CodeMissingDate         = "missing_date"
	CodeEventMismatch       = "event_mismatch"
)

// gatewayError maps a calendar failure onto NotFound or GatewayError.
func gatewayError(m *metrics.Metrics, operation string, err error) error {
	if errors.Is(err, domain.ErrEventNotFound) {
		return httperr.Wrap(httperr.KindNotFound, CodeEventNotFound, err)
	}
	m.IncGatewayError(operation)
	return httperr.Wrap(httperr.KindGateway, CodeCalendarUnavailable, err)
}

// storeError keeps kinds the store already assigned and classifies the
// rest as StoreError.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if httperr.KindOf(err) != "" {
		return err
	}
	return httperr.Wrap(httperr.KindStore, CodeStoreFailure, err)
}

// ownedEventID returns the calendar event of ap. A requested id that names
// a different event is a Conflict.
func ownedEventID(ap *models.Appointment, requested string) (string, error) {
	if requested != "" && requested != ap.EventID {
		return "", httperr.ErrBusiness(httperr.KindConflict, CodeEventMismatch)
	}
	return ap.EventID, nil
}
