package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment/mocks"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func eventAt(start, end time.Time, title string) interface{} {
	return mock.MatchedBy(func(in domain.EventInput) bool {
		return in.Start.Equal(start) && in.End.Equal(end) && in.Title == title
	})
}

func TestBookMeetingDefaultsTitleAndLocalizes(t *testing.T) {
	loc := kolkata(t)
	gw := new(mocks.Gateway)
	o := NewOrchestrator(gw, loc, zap.NewNop())

	start := time.Date(2025, 6, 11, 4, 30, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	gw.On("CreateEvent", mock.Anything, mock.MatchedBy(func(in domain.EventInput) bool {
		return in.Title == DefaultTitle &&
			in.Start.Location() == loc &&
			in.Start.Hour() == 10 &&
			in.End.Hour() == 11
	})).Return(domain.EventRef{ID: "evt1", Link: "https://calendar.example/evt1"}, nil).Once()

	ref, err := o.BookMeeting(context.Background(), start, end, "", "notes")
	require.NoError(t, err)
	assert.Equal(t, domain.EventRef{ID: "evt1", Link: "https://calendar.example/evt1"}, ref)
	gw.AssertExpectations(t)
}

func TestBookMeetingRejectsInvertedInterval(t *testing.T) {
	gw := new(mocks.Gateway)
	o := NewOrchestrator(gw, kolkata(t), nil)

	start := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
	_, err := o.BookMeeting(context.Background(), start, start.Add(-time.Minute), "x", "")

	assert.Equal(t, httperr.KindInvalidInput, httperr.KindOf(err))
	gw.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestBookMeetingGatewayFailure(t *testing.T) {
	gw := new(mocks.Gateway)
	o := NewOrchestrator(gw, kolkata(t), nil)
	gw.On("CreateEvent", mock.Anything, mock.Anything).
		Return(domain.EventRef{}, errors.New("connection refused")).Once()

	start := time.Now()
	_, err := o.BookMeeting(context.Background(), start, start.Add(time.Hour), "", "")

	assert.Equal(t, httperr.KindGateway, httperr.KindOf(err))
	assert.Equal(t, CodeCalendarUnavailable, httperr.CodeOf(err))
}

func TestUpdateMeeting(t *testing.T) {
	loc := kolkata(t)
	start := time.Date(2025, 6, 11, 15, 0, 0, 0, loc)
	end := start.Add(time.Hour)

	t.Run("default title", func(t *testing.T) {
		gw := new(mocks.Gateway)
		o := NewOrchestrator(gw, loc, nil)
		gw.On("UpdateEvent", mock.Anything, "evt1", eventAt(start, end, DefaultUpdateTitle)).
			Return(domain.EventRef{Link: "https://calendar.example/evt1"}, nil).Once()

		ref, err := o.UpdateMeeting(context.Background(), "evt1", start, end, "", "")
		require.NoError(t, err)
		assert.Equal(t, "evt1", ref.ID)
		gw.AssertExpectations(t)
	})

	t.Run("missing event", func(t *testing.T) {
		gw := new(mocks.Gateway)
		o := NewOrchestrator(gw, loc, nil)
		gw.On("UpdateEvent", mock.Anything, "gone", mock.Anything).
			Return(domain.EventRef{}, fmt.Errorf("update: %w", domain.ErrEventNotFound)).Once()

		_, err := o.UpdateMeeting(context.Background(), "gone", start, end, "t", "")
		assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
		assert.Equal(t, CodeEventNotFound, httperr.CodeOf(err))
	})
}

func TestDeleteMeeting(t *testing.T) {
	loc := kolkata(t)

	tests := []struct {
		name     string
		gwErr    error
		wantOK   bool
		wantKind httperr.Kind
	}{
		{"deleted", nil, true, ""},
		{"missing event", domain.ErrEventNotFound, false, httperr.KindNotFound},
		{"provider down", errors.New("503"), false, httperr.KindGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(mocks.Gateway)
			o := NewOrchestrator(gw, loc, nil)
			gw.On("DeleteEvent", mock.Anything, "evt1").Return(tt.gwErr).Once()

			ok, err := o.DeleteMeeting(context.Background(), "evt1")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, httperr.KindOf(err))
		})
	}
}
