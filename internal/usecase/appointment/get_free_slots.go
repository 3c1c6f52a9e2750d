package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
)

type GetFreeSlots struct {
	finder  *slot.Finder
	gateway domain.CalendarGateway
	metrics *metrics.Metrics
}

func NewGetFreeSlots(
	finder *slot.Finder,
	gateway domain.CalendarGateway,
	m *metrics.Metrics,
) *GetFreeSlots {
	return &GetFreeSlots{
		finder:  finder,
		gateway: gateway,
		metrics: m,
	}
}

func (uc *GetFreeSlots) Execute(
	ctx context.Context,
	in domain.FreeSlotsInput,
) (*domain.FreeSlots, error) {

	window, err := uc.finder.Window(in.Date)
	if err != nil {
		return nil, err
	}

	if in.DurationMinutes < 0 {
		return nil, httperr.InvalidInput(slot.CodeInvalidDuration)
	}

	busy, err := uc.gateway.ListEventsForDay(ctx, window.Midnight())
	if err != nil {
		return nil, gatewayError(uc.metrics, "list", err)
	}

	slots, err := uc.finder.FindFreeSlots(in.Date, busy, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	return &domain.FreeSlots{
		Date:    in.Date,
		Slots:   slots,
		Display: slot.FormatSlots(slots),
	}, nil
}
