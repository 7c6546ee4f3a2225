package settings

import (
	"Savoria-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SettingsRepository interface {
		GetSettings(ctx context.Context) (*entities.SiteSettings, error)
		UpdateSettings(ctx context.Context, settings *entities.SiteSettings) error
	}

	settingsRepository struct {
		db *gorm.DB
	}
)

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetSettings returns the singleton row, creating it with defaults on the
// first ever access.
func (r *settingsRepository) GetSettings(ctx context.Context) (*entities.SiteSettings, error) {
	var settings entities.SiteSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = defaultSettings()
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) UpdateSettings(ctx context.Context, settings *entities.SiteSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func defaultSettings() entities.SiteSettings {
	return entities.SiteSettings{
		ID:                uuid.New(),
		SiteName:          "Savoria",
		SiteTagline:       "Delicious food delivered fresh to your door",
		Phone:             "(555) 123-4567",
		Email:             "info@savoria.example",
		Address:           "123 Food Street, City",
		MondayHours:       "11:00 AM - 10:00 PM",
		TuesdayHours:      "11:00 AM - 10:00 PM",
		WednesdayHours:    "11:00 AM - 10:00 PM",
		ThursdayHours:     "11:00 AM - 10:00 PM",
		FridayHours:       "11:00 AM - 11:00 PM",
		SaturdayHours:     "11:00 AM - 11:00 PM",
		SundayHours:       "12:00 PM - 9:00 PM",
		DeliveryFee:       2.99,
		MinimumOrder:      15.00,
		IsDeliveryEnabled: true,
		IsPickupEnabled:   true,
		FooterText:        "© Savoria. All rights reserved.",
	}
}
