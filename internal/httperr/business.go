package httperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure by how the caller should react to it.
type Kind string

const (
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindGateway        Kind = "gateway_error"
	KindStore          Kind = "store_error"
	KindPartialBooking Kind = "partial_booking_inconsistency"
)

type BusinessError struct {
	Kind Kind
	Code string
	Err  error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

// Wrap keeps the collaborator error reachable through errors.Is/As.
func Wrap(kind Kind, code string, err error) error {
	return BusinessError{Kind: kind, Code: code, Err: err}
}

func InvalidInput(code string) error {
	return ErrBusiness(KindInvalidInput, code)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf returns the kind of err, or "" for errors that were never mapped.
func KindOf(err error) Kind {
	var pe *PartialBookingError
	if errors.As(err, &pe) {
		return KindPartialBooking
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func CodeOf(err error) string {
	var pe *PartialBookingError
	if errors.As(err, &pe) {
		return string(KindPartialBooking)
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PartialBookingError reports a remote calendar event that exists without
// the matching local record. It must reach the caller so the pair can be
// reconciled by hand.
type PartialBookingError struct {
	EventID   string
	EventLink string
	UserID    uint
	Date      string
	StartTime string
	Err       error
}

func (e *PartialBookingError) Error() string {
	msg := "partial booking: event " + e.EventID + " has no local record"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PartialBookingError) Unwrap() error {
	return e.Err
}
