package entities

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Date            time.Time  `gorm:"type:date" json:"date"`
	TimeSlot        string     `json:"time"` // HH:MM, from the fixed slot set
	PartySize       int        `json:"party_size"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	Status          string     `gorm:"default:pending" json:"status"` // pending, confirmed, completed, cancelled

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
