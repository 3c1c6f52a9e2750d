package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(action, entity string, entityID *uint, metadata any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{Action: action, Entity: entity, EntityID: entityID, Metadata: metadata})
	return s.err
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zap.NewNop())

	id := uint(7)
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "meeting_booked", Entity: "appointment", EntityID: &id})
	}
	d.Close()

	require.Len(t, sink.events, 10)
	assert.Equal(t, "meeting_booked", sink.events[0].Action)
	assert.Equal(t, uint(7), *sink.events[0].EntityID)
}

func TestDispatcherDropsAfterClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zap.NewNop())
	d.Close()
	d.Close()

	d.Dispatch(Event{Action: "late"})
	assert.Empty(t, sink.events)
}

func TestDispatcherLogsSinkErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink, zap.New(core))

	d.Dispatch(Event{Action: "meeting_deleted"})
	d.Close()

	require.Equal(t, 1, logs.FilterMessage("audit write failed").Len())
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "x"}) })
}
