package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/dto"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/appointment"
)

type FreeSlotsHandler struct {
	uc             *ucAppointment.GetFreeSlots
	defaultMinutes int
	log            *zap.Logger
}

func NewFreeSlotsHandler(
	uc *ucAppointment.GetFreeSlots,
	defaultMinutes int,
	log *zap.Logger,
) *FreeSlotsHandler {
	return &FreeSlotsHandler{
		uc:             uc,
		defaultMinutes: defaultMinutes,
		log:            log,
	}
}

// GET /api/free-slots?date=YYYY-MM-DD&duration_minutes=60
func (h *FreeSlotsHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	minutes := h.defaultMinutes
	if raw := c.Query("duration_minutes"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_duration", "duration_minutes must be an integer.")
			return
		}
		minutes = n
	}

	res, err := h.uc.Execute(c.Request.Context(), domain.FreeSlotsInput{
		Date:            date,
		DurationMinutes: minutes,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.FreeSlotsResponse{
		Date:      res.Date,
		FreeSlots: res.Display,
	})
}
