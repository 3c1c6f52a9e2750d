package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

const (
	codeDuplicate = "duplicate_record"
	codeNotFound  = "record_not_found"
	codeStore     = "store_failure"

	pgUniqueViolation = "23505"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func storeErr(err error) error {
	if isDuplicate(err) {
		return httperr.Wrap(httperr.KindConflict, codeDuplicate, err)
	}
	return httperr.Wrap(httperr.KindStore, codeStore, err)
}

// first runs a lookup and turns "no rows" into (nil, nil).
func first[T any](tx *gorm.DB) (*T, error) {
	var out T
	if err := tx.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &out, nil
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.KindNotFound, codeNotFound)
	}
	return nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AppointmentGormRepository) InsertUser(
	ctx context.Context,
	phone string,
	firstName string,
	lastName string,
) (uint, error) {

	u := models.User{
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return 0, storeErr(err)
	}
	return u.ID, nil
}

func (r *AppointmentGormRepository) GetUserByPhone(
	ctx context.Context,
	phone string,
) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).Where("phone = ?", phone))
}

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).Where("id = ?", id))
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) InsertAppointment(
	ctx context.Context,
	in domain.NewAppointment,
) (uint, error) {

	ap := models.Appointment{
		UserID:      in.UserID,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EventID:     in.EventID,
		Description: in.Description,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ap).Error; err != nil {
			return err
		}
		if in.IdempotencyKey == "" {
			return nil
		}
		return tx.Create(&models.IdempotencyKey{
			Key:           in.IdempotencyKey,
			EventID:       in.EventID,
			EventLink:     in.EventLink,
			AppointmentID: &ap.ID,
		}).Error
	})
	if err != nil {
		return 0, storeErr(err)
	}
	return ap.ID, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	userID uint,
	date string,
	startTime string,
) (*models.Appointment, error) {
	return first[models.Appointment](r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND start_time = ?", userID, date, startTime).
		Order("id DESC"))
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	return first[models.Appointment](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	id uint,
	date string,
	startTime string,
	description string,
	eventID string,
) error {

	return affected(r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"date":        date,
			"start_time":  startTime,
			"description": description,
			"event_id":    eventID,
		}))
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Appointment{}, id))
}

// --------------------------------------------------
// Idempotency
// --------------------------------------------------

func (r *AppointmentGormRepository) GetIdempotencyKey(
	ctx context.Context,
	key string,
) (*models.IdempotencyKey, error) {
	return first[models.IdempotencyKey](r.db.WithContext(ctx).Where("key = ?", key))
}

func (r *AppointmentGormRepository) SaveIdempotencyKey(
	ctx context.Context,
	rec *models.IdempotencyKey,
) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// Compile-time check
var _ domain.Store = (*AppointmentGormRepository)(nil)
