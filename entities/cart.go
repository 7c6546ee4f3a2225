package entities

import (
	"github.com/google/uuid"
)

// Cart is owned by exactly one of UserID (authenticated) or SessionKey
// (anonymous guest session).
type Cart struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     *uuid.UUID `gorm:"uniqueIndex" json:"user_id,omitempty"`
	SessionKey *string    `gorm:"uniqueIndex" json:"session_key,omitempty"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []*CartItem `gorm:"foreignKey:CartID"`
	Timestamp
}

type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CartID   uuid.UUID `json:"cart_id"`
	FoodID   uuid.UUID `json:"food_id"`
	Quantity int       `json:"quantity"`

	Cart *Cart `gorm:"foreignKey:CartID"`
	Food *Food `gorm:"foreignKey:FoodID"`
	Timestamp
}
