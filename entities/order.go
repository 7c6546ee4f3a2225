package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	CartID uuid.UUID `json:"cart_id"`
	Total  float64   `json:"total"`
	Status string    `gorm:"default:pending" json:"status"` // pending, paid, confirmed, preparing, ready, delivered, cancelled

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	DeliveryAddress string `json:"delivery_address,omitempty"`

	ReceiptURL    string `json:"receipt_url,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentNotes  string `json:"payment_notes,omitempty"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem is a snapshot of a cart line at checkout time. Name and price
// are copied by value so later Food edits never touch past orders.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	FoodName  string    `json:"food_name"`
	FoodPrice float64   `json:"food_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Timestamp
}

type PaymentTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	GrossAmount float64   `json:"gross_amount"`
	SnapToken   string    `json:"snap_token,omitempty"`
	RedirectURL string    `json:"redirect_url,omitempty"`
	Status      string    `json:"status"` // pending, settlement, expire, cancel, deny

	Order *Order `gorm:"foreignKey:OrderID"`
	Timestamp
}
