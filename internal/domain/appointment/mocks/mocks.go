// Package mocks holds testify mocks for the appointment collaborators.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

type Gateway struct {
	mock.Mock
}

var _ domain.CalendarGateway = (*Gateway)(nil)

func (m *Gateway) ListEventsForDay(ctx context.Context, day time.Time) ([]slot.Interval, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slot.Interval), args.Error(1)
}

func (m *Gateway) CreateEvent(ctx context.Context, in domain.EventInput) (domain.EventRef, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.EventRef), args.Error(1)
}

func (m *Gateway) UpdateEvent(ctx context.Context, eventID string, in domain.EventInput) (domain.EventRef, error) {
	args := m.Called(ctx, eventID, in)
	return args.Get(0).(domain.EventRef), args.Error(1)
}

func (m *Gateway) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

type Store struct {
	mock.Mock
}

var _ domain.Store = (*Store)(nil)

func (m *Store) InsertUser(ctx context.Context, phone, firstName, lastName string) (uint, error) {
	args := m.Called(ctx, phone, firstName, lastName)
	return args.Get(0).(uint), args.Error(1)
}

func (m *Store) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *Store) InsertAppointment(ctx context.Context, in domain.NewAppointment) (uint, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(uint), args.Error(1)
}

func (m *Store) GetAppointment(ctx context.Context, userID uint, date, startTime string) (*models.Appointment, error) {
	args := m.Called(ctx, userID, date, startTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *Store) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *Store) UpdateAppointment(ctx context.Context, id uint, date, startTime, description, eventID string) error {
	args := m.Called(ctx, id, date, startTime, description, eventID)
	return args.Error(0)
}

func (m *Store) DeleteAppointment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Store) GetIdempotencyKey(ctx context.Context, key string) (*models.IdempotencyKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IdempotencyKey), args.Error(1)
}

func (m *Store) SaveIdempotencyKey(ctx context.Context, rec *models.IdempotencyKey) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type Locker struct {
	mock.Mock
}

var _ domain.Locker = (*Locker)(nil)

func (m *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}
