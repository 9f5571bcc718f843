package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// MonitorBackendHealth probes the backend once immediately and then on every
// tick, storing the outcome in healthy until ctx is cancelled. It only logs on
// transitions.
func MonitorBackendHealth(ctx context.Context, checker HealthChecker, interval time.Duration, healthy *atomic.Bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	probe := func() {
		err := checker.HealthCheck(ctx)
		isHealthy := err == nil
		was := healthy.Swap(isHealthy)

		switch {
		case !isHealthy && was:
			slog.Warn("[HealthCheck] Inference backend is unhealthy",
				slog.String("error", err.Error()))
		case isHealthy && !was:
			slog.Info("[HealthCheck] Inference backend is reachable")
		}
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
