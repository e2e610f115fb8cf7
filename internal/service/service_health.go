package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/store"
)

type healthService struct {
	pinger store.Pinger
	dbName string

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, dbName string, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		dbName: dbName,
		logger: logger,
	}
}

func (h *healthService) CheckDB(ctx context.Context) (string, error) {
	if err := h.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return "", fmt.Errorf("database ping failed: %w", err)
	}

	return h.dbName, nil
}
