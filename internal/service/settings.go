package service

import (
	"context"
	"log/slog"

	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/repository"

	"github.com/google/uuid"
)

type SettingsService struct {
	settings *repository.SettingsRepository
	log      *slog.Logger
}

func NewSettingsService(settings *repository.SettingsRepository, log *slog.Logger) *SettingsService {
	return &SettingsService{settings: settings, log: log}
}

// Get falls back to the defaults if the stored row cannot be read.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) model.UserSettings {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		s.log.Warn("reading settings failed", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return model.DefaultSettings(userID)
	}
	return settings
}

func (s *SettingsService) SetSidebarExpanded(ctx context.Context, userID uuid.UUID, expanded bool) (model.UserSettings, error) {
	settings := model.UserSettings{UserID: userID, SidebarExpanded: expanded}
	if err := s.settings.Save(ctx, settings); err != nil {
		return model.UserSettings{}, newError("SetSidebarExpanded", ErrPersistence, "Failed to save settings", err)
	}
	return settings, nil
}
