package models

import "time"

// User is a caller of the scheduler, keyed externally by phone number.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Phone     string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
