package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetSettings    = "site settings retrieved successfully"
	MessageSuccessUpdateSettings = "site settings updated successfully"
	MessageSuccessUploadLogo     = "logo uploaded successfully"

	MessageFailedGetSettings    = "failed to retrieve site settings"
	MessageFailedUpdateSettings = "failed to update site settings"
	MessageFailedUploadLogo     = "failed to upload logo"

	ErrSettingsNotFound = errors.New("site settings not found")
)

type (
	UpdateSettingsRequest struct {
		SiteName    string `json:"site_name" validate:"omitempty"`
		SiteTagline string `json:"site_tagline" validate:"omitempty"`

		Phone   string `json:"phone" validate:"omitempty"`
		Email   string `json:"email" validate:"omitempty,email"`
		Address string `json:"address" validate:"omitempty"`

		FacebookURL    string `json:"facebook_url" validate:"omitempty,url"`
		InstagramURL   string `json:"instagram_url" validate:"omitempty,url"`
		TwitterURL     string `json:"twitter_url" validate:"omitempty,url"`
		WhatsappNumber string `json:"whatsapp_number" validate:"omitempty"`

		MondayHours    string `json:"monday_hours" validate:"omitempty"`
		TuesdayHours   string `json:"tuesday_hours" validate:"omitempty"`
		WednesdayHours string `json:"wednesday_hours" validate:"omitempty"`
		ThursdayHours  string `json:"thursday_hours" validate:"omitempty"`
		FridayHours    string `json:"friday_hours" validate:"omitempty"`
		SaturdayHours  string `json:"saturday_hours" validate:"omitempty"`
		SundayHours    string `json:"sunday_hours" validate:"omitempty"`

		DeliveryFee       *float64 `json:"delivery_fee" validate:"omitempty,gte=0"`
		MinimumOrder      *float64 `json:"minimum_order" validate:"omitempty,gte=0"`
		IsDeliveryEnabled *bool    `json:"is_delivery_enabled" validate:"omitempty"`
		IsPickupEnabled   *bool    `json:"is_pickup_enabled" validate:"omitempty"`

		FooterText string `json:"footer_text" validate:"omitempty"`
	}

	UploadLogoRequest struct {
		Logo *multipart.FileHeader `json:"logo" form:"logo" validate:"required"`
	}

	SiteSettingsResponse struct {
		SiteName    string `json:"site_name"`
		SiteTagline string `json:"site_tagline"`
		LogoURL     string `json:"logo_url,omitempty"`

		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`

		FacebookURL    string `json:"facebook_url,omitempty"`
		InstagramURL   string `json:"instagram_url,omitempty"`
		TwitterURL     string `json:"twitter_url,omitempty"`
		WhatsappNumber string `json:"whatsapp_number,omitempty"`

		BusinessHours map[string]string `json:"business_hours"`

		DeliveryFee       float64 `json:"delivery_fee"`
		MinimumOrder      float64 `json:"minimum_order"`
		IsDeliveryEnabled bool    `json:"is_delivery_enabled"`
		IsPickupEnabled   bool    `json:"is_pickup_enabled"`

		FooterText string `json:"footer_text"`
	}
)
