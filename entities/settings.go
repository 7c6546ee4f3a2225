package entities

import (
	"github.com/google/uuid"
)

// SiteSettings is a singleton: exactly one row ever exists, created with
// defaults on first access.
type SiteSettings struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SiteName    string    `gorm:"default:Savoria" json:"site_name"`
	SiteTagline string    `json:"site_tagline"`
	LogoURL     string    `json:"logo_url,omitempty"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`

	FacebookURL    string `json:"facebook_url,omitempty"`
	InstagramURL   string `json:"instagram_url,omitempty"`
	TwitterURL     string `json:"twitter_url,omitempty"`
	WhatsappNumber string `json:"whatsapp_number,omitempty"`

	MondayHours    string `json:"monday_hours"`
	TuesdayHours   string `json:"tuesday_hours"`
	WednesdayHours string `json:"wednesday_hours"`
	ThursdayHours  string `json:"thursday_hours"`
	FridayHours    string `json:"friday_hours"`
	SaturdayHours  string `json:"saturday_hours"`
	SundayHours    string `json:"sunday_hours"`

	DeliveryFee       float64 `json:"delivery_fee"`
	MinimumOrder      float64 `json:"minimum_order"`
	IsDeliveryEnabled bool    `gorm:"default:true" json:"is_delivery_enabled"`
	IsPickupEnabled   bool    `gorm:"default:true" json:"is_pickup_enabled"`

	FooterText string `json:"footer_text"`
	Timestamp
}
