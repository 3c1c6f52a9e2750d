package models

import "time"

// Appointment is the local record of a meeting booked on the remote
// calendar. EventID is not checked against the calendar.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index:idx_appointment_slot" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date      string `gorm:"size:10;index:idx_appointment_slot" json:"date"`
	StartTime string `gorm:"size:5;index:idx_appointment_slot" json:"start_time"`

	EventID     string `gorm:"size:255;index" json:"event_id"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
