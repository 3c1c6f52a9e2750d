package appointment

import (
	"context"

	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

type NewAppointment struct {
	UserID      uint
	Date        string
	StartTime   string
	EventID     string
	EventLink   string
	Description string

	// IdempotencyKey, when set, is recorded in the same transaction.
	IdempotencyKey string
}

// Store persists users and appointments. Lookups return (nil, nil) when
// the row does not exist; mutations on missing rows fail with a NotFound
// business error.
type Store interface {
	// -------- User --------
	InsertUser(
		ctx context.Context,
		phone string,
		firstName string,
		lastName string,
	) (uint, error)

	GetUserByPhone(
		ctx context.Context,
		phone string,
	) (*models.User, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Appointment --------
	InsertAppointment(
		ctx context.Context,
		in NewAppointment,
	) (uint, error)

	GetAppointment(
		ctx context.Context,
		userID uint,
		date string,
		startTime string,
	) (*models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		id uint,
		date string,
		startTime string,
		description string,
		eventID string,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Idempotency --------
	GetIdempotencyKey(
		ctx context.Context,
		key string,
	) (*models.IdempotencyKey, error)

	SaveIdempotencyKey(
		ctx context.Context,
		rec *models.IdempotencyKey,
	) error
}
