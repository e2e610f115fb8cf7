package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The database health worker
// runs only when a reporter is given, i.e. when the gRPC health server is on.
func NewWorkers(services *service.Services, reporter HealthReporter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if reporter != nil && cfg.HealthInterval > 0 {
		w.workers = append(w.workers, NewDBHealthWorker(services.HealthService, reporter, cfg.HealthInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")

	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}

	wg.Wait()
}
