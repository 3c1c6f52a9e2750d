package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	EventID string `json:"event_id,omitempty"`
	Link    string `json:"link,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

var messages = map[Kind]string{
	KindInvalidInput: "Invalid request.",
	KindNotFound:     "Resource not found.",
	KindConflict:     "Request conflicts with existing state.",
	KindGateway:      "Calendar provider request failed.",
	KindStore:        "Database request failed.",
}

// Respond writes err using the status of its kind. Errors that were never
// mapped to a kind are logged and reported as a generic store failure so
// no internal detail leaks to the client.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	var pe *PartialBookingError
	if errors.As(err, &pe) {
		c.JSON(http.StatusInternalServerError, HTTPError{
			Code:    string(KindPartialBooking),
			Message: "Meeting was booked on the calendar but could not be saved locally.",
			EventID: pe.EventID,
			Link:    pe.EventLink,
		})
		return
	}

	var be BusinessError
	if !errors.As(err, &be) {
		if log != nil {
			log.Error("unmapped error", zap.Error(err), zap.String("path", c.FullPath()))
		}
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	if be.Kind == KindGateway || be.Kind == KindStore {
		if log != nil {
			log.Error("request failed",
				zap.String("kind", string(be.Kind)),
				zap.String("code", be.Code),
				zap.Error(be.Err),
			)
		}
	}

	Write(c, StatusFor(be.Kind), be.Code, messages[be.Kind])
}
