package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		kind Kind
		code string
	}{
		{"plain error", cause, "", ""},
		{"business", InvalidInput("invalid_date"), KindInvalidInput, "invalid_date"},
		{"wrapped business", fmt.Errorf("ctx: %w", Wrap(KindGateway, "calendar_unavailable", cause)), KindGateway, "calendar_unavailable"},
		{"partial booking", &PartialBookingError{EventID: "ev1", Err: cause}, KindPartialBooking, "partial_booking_inconsistency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.code, CodeOf(tt.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindStore, "store_failure", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsBusiness(err, "store_failure"))
	assert.True(t, IsKind(err, KindStore))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(KindInvalidInput))
	assert.Equal(t, http.StatusNotFound, StatusFor(KindNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(KindConflict))
	assert.Equal(t, http.StatusBadGateway, StatusFor(KindGateway))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(KindStore))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(KindPartialBooking))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrBusiness(KindNotFound, "appointment_not_found"), http.StatusNotFound, "appointment_not_found"},
		{"gateway", Wrap(KindGateway, "calendar_unavailable", errors.New("503")), http.StatusBadGateway, "calendar_unavailable"},
		{"unmapped", errors.New("raw"), http.StatusInternalServerError, "internal_error"},
		{"partial", &PartialBookingError{EventID: "ev9", EventLink: "https://cal/ev9"}, http.StatusInternalServerError, "partial_booking_inconsistency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, nil, tt.err)

			require.Equal(t, tt.status, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			if tt.code == "partial_booking_inconsistency" {
				assert.Equal(t, "ev9", body.EventID)
				assert.Equal(t, "https://cal/ev9", body.Link)
			}
		})
	}
}
