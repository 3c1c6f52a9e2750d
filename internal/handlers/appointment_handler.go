package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/dto"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	update *ucAppointment.UpdateAppointment
	remove *ucAppointment.DeleteAppointment
	get    *ucAppointment.GetAppointment
	log    *zap.Logger
}

func NewAppointmentHandler(
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	get *ucAppointment.GetAppointment,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		update: update,
		remove: remove,
		get:    get,
		log:    log,
	}
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	res, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: req.AppointmentID,
		StartTime:     req.StartTime,
		Title:         req.Title,
		Description:   req.Description,
		EventID:       req.EventID,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.UpdateAppointmentResponse{
		Success: true,
		EventID: res.EventID,
		Link:    res.Link,
		Message: "Appointment updated successfully",
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	var req dto.DeleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	res, err := h.remove.Execute(c.Request.Context(), ucAppointment.DeleteAppointmentInput{
		AppointmentID: req.AppointmentID,
		EventID:       req.EventID,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	msg := "Appointment deleted successfully"
	if !res.RemoteDeleted {
		msg = "Appointment deleted; calendar event was already gone"
	}
	httpresp.OK(c, dto.DeleteAppointmentResponse{
		Success:       true,
		RemoteDeleted: res.RemoteDeleted,
		Message:       msg,
	})
}

// ======================================================
// GET
// ======================================================

// GET /api/appointment/get?user_id=1&date=YYYY-MM-DD&start_time=HH:MM
func (h *AppointmentHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "user_id must be a positive integer.")
		return
	}

	ap, err := h.get.Execute(
		c.Request.Context(),
		uint(userID),
		c.Query("date"),
		c.Query("start_time"),
	)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"data":    dto.NewAppointmentDTO(ap),
	})
}
