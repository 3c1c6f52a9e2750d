package dto

import (
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

type FreeSlotsResponse struct {
	Date      string   `json:"date"`
	FreeSlots []string `json:"free_slots"`
}

type BookMeetingRequest struct {
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time"`
	Title       string `json:"title"`
	Description string `json:"description"`

	UserID uint   `json:"user_id"`
	Phone  string `json:"phone" binding:"omitempty,phone"`

	IdempotencyKey string `json:"idempotency_key" binding:"max=128"`
}

type BookMeetingResponse struct {
	Result        string `json:"result"`
	Link          string `json:"link"`
	EventID       string `json:"event_id"`
	AppointmentID *uint  `json:"appointment_id,omitempty"`
	Replayed      bool   `json:"replayed"`
}

type UpdateAppointmentRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EventID       string `json:"event_id"`
}

type UpdateAppointmentResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id"`
	Link    string `json:"link,omitempty"`
	Message string `json:"message"`
}

type DeleteAppointmentRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	EventID       string `json:"event_id"`
}

type DeleteAppointmentResponse struct {
	Success       bool   `json:"success"`
	RemoteDeleted bool   `json:"remote_deleted"`
	Message       string `json:"message"`
}

type AppointmentDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EventID     string    `json:"event_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          ap.ID,
		UserID:      ap.UserID,
		Date:        ap.Date,
		StartTime:   ap.StartTime,
		EventID:     ap.EventID,
		Description: ap.Description,
		CreatedAt:   ap.CreatedAt,
		UpdatedAt:   ap.UpdatedAt,
	}
}
