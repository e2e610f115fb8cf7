package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/store"
	"github.com/MKhiriev/vero/models"
)

// Services groups every service used by the transport handlers.
// MediaService is nil when media uploads are not configured.
type Services struct {
	AuthService    AuthService
	SessionService SessionService
	ChatService    ChatService
	MediaService   MediaService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, storages.AuditRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	sessionService, err := NewSessionService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	chatService := NewChatValidationService().Wrap(
		NewChatService(storages.MessageRepository, storages.AuditRepository, cfg.App.PurgePolicy, logger),
	)

	var mediaService MediaService
	if cfg.Storage.Media.Enabled() {
		mediaService, err = NewMediaService(ctx, cfg.Storage.Media, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating media service: %w", err)
		}
	} else {
		logger.Info().Msg("media endpoint is not configured, media uploads are disabled")
	}

	return &Services{
		AuthService:    authService,
		SessionService: sessionService,
		ChatService:    chatService,
		MediaService:   mediaService,
		HealthService:  NewHealthService(storages.DB, cfg.Storage.DB.Name, logger),
		AppInfoService: appInfoService,
	}, nil
}
