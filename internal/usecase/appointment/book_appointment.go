package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	StartTime string
	EndTime   string

	Title       string
	Description string

	// Either identifies the user the appointment is stored for. When both
	// are empty only the calendar event is created.
	UserID uint
	Phone  string

	IdempotencyKey string
}

type BookAppointmentResult struct {
	EventID       string
	Link          string
	AppointmentID *uint
	Replayed      bool
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	orchestrator    *Orchestrator
	store           domain.Store
	locker          domain.Locker
	audit           *audit.Dispatcher
	defaultDuration time.Duration
	log             *zap.Logger
	metrics         *metrics.Metrics
}

func NewBookAppointment(
	orchestrator *Orchestrator,
	store domain.Store,
	locker domain.Locker,
	audit *audit.Dispatcher,
	defaultDuration time.Duration,
	log *zap.Logger,
	m *metrics.Metrics,
) *BookAppointment {
	if locker == nil {
		locker = domain.NoopLocker{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BookAppointment{
		orchestrator:    orchestrator,
		store:           store,
		locker:          locker,
		audit:           audit,
		defaultDuration: defaultDuration,
		log:             log,
		metrics:         m,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookAppointmentResult, error) {

	// --------------------------------------------------
	// 1. Timestamps
	// --------------------------------------------------
	if in.StartTime == "" {
		uc.metrics.IncBooking(metrics.OutcomeRejected)
		return nil, httperr.InvalidInput(CodeMissingStartTime)
	}

	loc := uc.orchestrator.Location()
	start, err := parseTimestamp(loc, in.StartTime)
	if err != nil {
		uc.metrics.IncBooking(metrics.OutcomeRejected)
		return nil, err
	}

	var endPtr *time.Time
	if in.EndTime != "" {
		end, err := parseTimestamp(loc, in.EndTime)
		if err != nil {
			uc.metrics.IncBooking(metrics.OutcomeRejected)
			return nil, err
		}
		endPtr = &end
	}
	end := domain.ResolveEnd(start, endPtr, uc.defaultDuration)

	// --------------------------------------------------
	// 2. User, before anything touches the calendar
	// --------------------------------------------------
	user, err := uc.resolveUser(ctx, in)
	if err != nil {
		uc.metrics.IncBooking(failureOutcome(err))
		return nil, err
	}

	// --------------------------------------------------
	// 3. Idempotency
	// --------------------------------------------------
	if in.IdempotencyKey != "" {
		release, err := uc.locker.Acquire(ctx, in.IdempotencyKey)
		if errors.Is(err, domain.ErrLockHeld) {
			uc.metrics.IncBooking(metrics.OutcomeRejected)
			return nil, httperr.Wrap(httperr.KindConflict, CodeBookingInProgress, err)
		}
		if err != nil {
			uc.metrics.IncBooking(metrics.OutcomeStoreError)
			return nil, httperr.Wrap(httperr.KindStore, CodeStoreFailure, err)
		}
		defer release()

		rec, err := uc.store.GetIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			err = storeError(err)
			uc.metrics.IncBooking(failureOutcome(err))
			return nil, err
		}
		if rec != nil {
			uc.metrics.IncBooking(metrics.OutcomeReplayed)
			return &BookAppointmentResult{
				EventID:       rec.EventID,
				Link:          rec.EventLink,
				AppointmentID: rec.AppointmentID,
				Replayed:      true,
			}, nil
		}
	}

	// --------------------------------------------------
	// 4. Calendar event
	// --------------------------------------------------
	ref, err := uc.orchestrator.BookMeeting(ctx, start, end, in.Title, in.Description)
	if err != nil {
		uc.metrics.IncBooking(failureOutcome(err))
		return nil, err
	}

	// --------------------------------------------------
	// 5. Local record
	// --------------------------------------------------
	date, clock := domain.SlotKey(start.In(loc))
	result := &BookAppointmentResult{EventID: ref.ID, Link: ref.Link}

	var userID uint
	if user != nil {
		userID = user.ID
	}

	if err := uc.persist(ctx, in, user, ref, date, clock, result); err != nil {
		uc.metrics.IncBooking(metrics.OutcomePartial)
		return nil, reportPartial(uc.log, uc.audit, uc.metrics, "book", &httperr.PartialBookingError{
			EventID:   ref.ID,
			EventLink: ref.Link,
			UserID:    userID,
			Date:      date,
			StartTime: clock,
			Err:       err,
		})
	}

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "meeting_booked",
		Entity:   "appointment",
		EntityID: result.AppointmentID,
		Metadata: map[string]any{
			"event_id":   ref.ID,
			"user_id":    userID,
			"date":       date,
			"start_time": clock,
		},
	})
	uc.metrics.IncBooking(metrics.OutcomeBooked)

	return result, nil
}

func (uc *BookAppointment) resolveUser(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.User, error) {

	var (
		user *models.User
		err  error
	)
	switch {
	case in.UserID != 0:
		user, err = uc.store.GetUserByID(ctx, in.UserID)
	case in.Phone != "":
		user, err = uc.store.GetUserByPhone(ctx, in.Phone)
	default:
		return nil, nil
	}

	if err != nil {
		return nil, storeError(err)
	}
	if user == nil {
		return nil, httperr.ErrBusiness(httperr.KindNotFound, CodeUserNotFound)
	}
	return user, nil
}

func (uc *BookAppointment) persist(
	ctx context.Context,
	in BookAppointmentInput,
	user *models.User,
	ref domain.EventRef,
	date string,
	clock string,
	result *BookAppointmentResult,
) error {

	if user != nil {
		id, err := uc.store.InsertAppointment(ctx, domain.NewAppointment{
			UserID:         user.ID,
			Date:           date,
			StartTime:      clock,
			EventID:        ref.ID,
			EventLink:      ref.Link,
			Description:    in.Description,
			IdempotencyKey: in.IdempotencyKey,
		})
		if err != nil {
			return err
		}
		result.AppointmentID = &id
		return nil
	}

	if in.IdempotencyKey == "" {
		return nil
	}
	return uc.store.SaveIdempotencyKey(ctx, &models.IdempotencyKey{
		Key:       in.IdempotencyKey,
		EventID:   ref.ID,
		EventLink: ref.Link,
	})
}

// failureOutcome labels a failed booking for the bookings counter.
func failureOutcome(err error) string {
	switch httperr.KindOf(err) {
	case httperr.KindGateway:
		return metrics.OutcomeGateway
	case httperr.KindStore:
		return metrics.OutcomeStoreError
	default:
		return metrics.OutcomeRejected
	}
}
