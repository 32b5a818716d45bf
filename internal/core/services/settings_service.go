package services

import (
	"context"
	"fmt"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
)

// settingsService manages branding and configuration.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
	activity     portssvc.ActivityRecorder
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, activity portssvc.ActivityRecorder) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo, activity: activity}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	return s.settingsRepo.GetSettings(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.Viewer) (domain.Settings, error) {
	if actor.Role != domain.RoleAdmin {
		return domain.Settings{}, apperrors.ErrForbidden
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.CompanyName != nil && *req.CompanyName != settings.CompanyName {
		settings.CompanyName = *req.CompanyName
		s.activity.Record(ctx, actor.Username, "Branding Update", fmt.Sprintf("Company name set to %s", settings.CompanyName), domain.ActivitySystem)
	}
	if req.CompanyLogo != nil && *req.CompanyLogo != settings.CompanyLogo {
		settings.CompanyLogo = *req.CompanyLogo
		s.activity.Record(ctx, actor.Username, "Branding Update", "Company logo updated", domain.ActivitySystem)
	}
	if req.SheetURL != nil && *req.SheetURL != settings.SheetURL {
		settings.SheetURL = *req.SheetURL
		s.activity.Record(ctx, actor.Username, "System Config", "Sheet webhook URL updated", domain.ActivitySystem)
	}
	if req.DarkMode != nil && *req.DarkMode != settings.DarkMode {
		settings.DarkMode = *req.DarkMode
		s.activity.Record(ctx, actor.Username, "System Theme Change", fmt.Sprintf("Dark mode set to %t", settings.DarkMode), domain.ActivitySystem)
	}

	if err := s.settingsRepo.UpdateSettings(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}
