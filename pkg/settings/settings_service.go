package settings

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/cache"
	"Savoria-Backend/internal/utils/storage"
	"context"
)

type (
	SettingsService interface {
		GetSettings(ctx context.Context) (domain.SiteSettingsResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SiteSettingsResponse, error)
		UploadLogo(ctx context.Context, req domain.UploadLogoRequest) (string, error)
	}

	settingsService struct {
		settingsRepository SettingsRepository
		cache              cache.Client
		s3                 storage.AwsS3
	}
)

func NewSettingsService(settingsRepository SettingsRepository, cacheClient cache.Client, s3 storage.AwsS3) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		cache:              cacheClient,
		s3:                 s3,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.SiteSettingsResponse, error) {
	var cached domain.SiteSettingsResponse
	if s.cache.Get(ctx, cache.KeySiteSettings, &cached) {
		return cached, nil
	}

	settings, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		return domain.SiteSettingsResponse{}, err
	}

	res := settingsResponse(settings)
	_ = s.cache.Set(ctx, cache.KeySiteSettings, res, cache.TTLSettings)
	return res, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SiteSettingsResponse, error) {
	settings, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		return domain.SiteSettingsResponse{}, err
	}

	applyUpdate(settings, req)

	if err := s.settingsRepository.UpdateSettings(ctx, settings); err != nil {
		return domain.SiteSettingsResponse{}, err
	}

	_ = s.cache.Delete(ctx, cache.KeySiteSettings)
	return settingsResponse(settings), nil
}

func (s *settingsService) UploadLogo(ctx context.Context, req domain.UploadLogoRequest) (string, error) {
	settings, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		return "", err
	}

	objectKey, err := s.s3.UploadFile("logo", req.Logo, "site", storage.AllowImage...)
	if err != nil {
		return "", err
	}

	settings.LogoURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.settingsRepository.UpdateSettings(ctx, settings); err != nil {
		return "", err
	}

	_ = s.cache.Delete(ctx, cache.KeySiteSettings)
	return settings.LogoURL, nil
}

func applyUpdate(settings *entities.SiteSettings, req domain.UpdateSettingsRequest) {
	if req.SiteName != "" {
		settings.SiteName = req.SiteName
	}
	if req.SiteTagline != "" {
		settings.SiteTagline = req.SiteTagline
	}
	if req.Phone != "" {
		settings.Phone = req.Phone
	}
	if req.Email != "" {
		settings.Email = req.Email
	}
	if req.Address != "" {
		settings.Address = req.Address
	}
	if req.FacebookURL != "" {
		settings.FacebookURL = req.FacebookURL
	}
	if req.InstagramURL != "" {
		settings.InstagramURL = req.InstagramURL
	}
	if req.TwitterURL != "" {
		settings.TwitterURL = req.TwitterURL
	}
	if req.WhatsappNumber != "" {
		settings.WhatsappNumber = req.WhatsappNumber
	}
	if req.MondayHours != "" {
		settings.MondayHours = req.MondayHours
	}
	if req.TuesdayHours != "" {
		settings.TuesdayHours = req.TuesdayHours
	}
	if req.WednesdayHours != "" {
		settings.WednesdayHours = req.WednesdayHours
	}
	if req.ThursdayHours != "" {
		settings.ThursdayHours = req.ThursdayHours
	}
	if req.FridayHours != "" {
		settings.FridayHours = req.FridayHours
	}
	if req.SaturdayHours != "" {
		settings.SaturdayHours = req.SaturdayHours
	}
	if req.SundayHours != "" {
		settings.SundayHours = req.SundayHours
	}
	if req.DeliveryFee != nil {
		settings.DeliveryFee = domain.RoundCents(*req.DeliveryFee)
	}
	if req.MinimumOrder != nil {
		settings.MinimumOrder = domain.RoundCents(*req.MinimumOrder)
	}
	if req.IsDeliveryEnabled != nil {
		settings.IsDeliveryEnabled = *req.IsDeliveryEnabled
	}
	if req.IsPickupEnabled != nil {
		settings.IsPickupEnabled = *req.IsPickupEnabled
	}
	if req.FooterText != "" {
		settings.FooterText = req.FooterText
	}
}

func settingsResponse(settings *entities.SiteSettings) domain.SiteSettingsResponse {
	return domain.SiteSettingsResponse{
		SiteName:       settings.SiteName,
		SiteTagline:    settings.SiteTagline,
		LogoURL:        settings.LogoURL,
		Phone:          settings.Phone,
		Email:          settings.Email,
		Address:        settings.Address,
		FacebookURL:    settings.FacebookURL,
		InstagramURL:   settings.InstagramURL,
		TwitterURL:     settings.TwitterURL,
		WhatsappNumber: settings.WhatsappNumber,
		BusinessHours: map[string]string{
			"Monday":    settings.MondayHours,
			"Tuesday":   settings.TuesdayHours,
			"Wednesday": settings.WednesdayHours,
			"Thursday":  settings.ThursdayHours,
			"Friday":    settings.FridayHours,
			"Saturday":  settings.SaturdayHours,
			"Sunday":    settings.SundayHours,
		},
		DeliveryFee:       settings.DeliveryFee,
		MinimumOrder:      settings.MinimumOrder,
		IsDeliveryEnabled: settings.IsDeliveryEnabled,
		IsPickupEnabled:   settings.IsPickupEnabled,
		FooterText:        settings.FooterText,
	}
}
