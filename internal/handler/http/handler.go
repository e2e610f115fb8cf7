package http

import (
	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
)

type Handler struct {
	services *service.Services

	// loginLimiter throttles POST /api/auth/login per client address.
	// Nil disables throttling.
	loginLimiter *fixedWindowLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		logger:   logger,
	}
	if cfg.LoginRateLimit > 0 && cfg.LoginRateWindow > 0 {
		h.loginLimiter = newFixedWindowLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	}

	return h
}
