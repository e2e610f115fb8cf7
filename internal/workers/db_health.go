package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
)

// DBHealthWorker pings the database every interval and reports the result.
type DBHealthWorker struct {
	checker  service.HealthService
	reporter HealthReporter
	interval time.Duration

	logger *logger.Logger
}

func NewDBHealthWorker(checker service.HealthService, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *DBHealthWorker {
	return &DBHealthWorker{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run checks once immediately, then on every tick until ctx is done.
func (w *DBHealthWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ok := w.check(ctx); ok != serving {
				w.logger.Info().Bool("serving", ok).Msg("database health changed")
				serving = ok
			}
		}
	}
}

func (w *DBHealthWorker) check(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	_, err := w.checker.CheckDB(checkCtx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("database health check failed")
	}

	ok := err == nil
	w.reporter.SetServing(ok)

	return ok
}
