package handler

import (
	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/handler/grpc"
	"github.com/MKhiriev/vero/internal/handler/http"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
)

// Handlers groups the transport handlers enabled by configuration. A nil
// field means that transport is off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
