package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
	"github.com/BruksfildServices01/meeting-scheduler/internal/timezone"
)

type GetAppointment struct {
	store domain.Store
}

func NewGetAppointment(store domain.Store) *GetAppointment {
	return &GetAppointment{store: store}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	userID uint,
	date string,
	startTime string,
) (*models.Appointment, error) {

	switch {
	case userID == 0:
		return nil, httperr.InvalidInput(CodeMissingUser)
	case date == "":
		return nil, httperr.InvalidInput(CodeMissingDate)
	case startTime == "":
		return nil, httperr.InvalidInput(CodeMissingStartTime)
	}

	if _, err := time.Parse(timezone.DateLayout, date); err != nil {
		return nil, httperr.Wrap(httperr.KindInvalidInput, CodeInvalidDateOrTime, err)
	}
	if _, err := time.Parse(timezone.ClockLayout, startTime); err != nil {
		return nil, httperr.Wrap(httperr.KindInvalidInput, CodeInvalidDateOrTime, err)
	}

	ap, err := uc.store.GetAppointment(ctx, userID, date, startTime)
	if err != nil {
		return nil, storeError(err)
	}
	if ap == nil {
		return nil, httperr.ErrBusiness(httperr.KindNotFound, CodeAppointmentNotFound)
	}
	return ap, nil
}
