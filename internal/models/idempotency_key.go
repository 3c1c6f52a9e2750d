package models

import "time"

// IdempotencyKey remembers which booking a caller-supplied token produced,
// so a retried create returns the first result instead of a new event.
type IdempotencyKey struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Key string `gorm:"size:128;uniqueIndex;not null" json:"key"`

	EventID       string `gorm:"size:255;not null" json:"event_id"`
	EventLink     string `gorm:"size:512" json:"event_link"`
	AppointmentID *uint  `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
}
