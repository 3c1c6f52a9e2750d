package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/dto"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/appointment"
)

type MeetingHandler struct {
	book *ucAppointment.BookAppointment
	log  *zap.Logger
}

func NewMeetingHandler(
	book *ucAppointment.BookAppointment,
	log *zap.Logger,
) *MeetingHandler {
	return &MeetingHandler{
		book: book,
		log:  log,
	}
}

// POST /api/book-meeting
func (h *MeetingHandler) Book(c *gin.Context) {
	var req dto.BookMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	key := req.IdempotencyKey
	if key == "" {
		key = c.GetHeader(middleware.HeaderIdempotencyKey)
	}
	if len(key) > 128 {
		httperr.BadRequest(c, "invalid_idempotency_key", "Idempotency key is too long.")
		return
	}

	res, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Title:          req.Title,
		Description:    req.Description,
		UserID:         req.UserID,
		Phone:          req.Phone,
		IdempotencyKey: key,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	body := dto.BookMeetingResponse{
		Result:        "Appointment booked successfully",
		Link:          res.Link,
		EventID:       res.EventID,
		AppointmentID: res.AppointmentID,
		Replayed:      res.Replayed,
	}
	if res.Replayed {
		httpresp.OK(c, body)
		return
	}
	httpresp.Created(c, body)
}
