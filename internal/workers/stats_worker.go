package workers

import (
	"context"
	"time"

	"usta_backend/internal/logger"
	"usta_backend/internal/services"
)

// StatsWorker recomputes the daily counters on a fixed interval.
type StatsWorker struct {
	statsService services.StatsService
	interval     time.Duration
}

func NewStatsWorker(statsService services.StatsService, interval time.Duration) *StatsWorker {
	return &StatsWorker{statsService: statsService, interval: interval}
}

// Run blocks until the context is canceled. One recomputation happens
// immediately so counters exist right after startup.
func (w *StatsWorker) Run(ctx context.Context) {
	w.recompute()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stats worker stopped")
			return
		case <-ticker.C:
			w.recompute()
		}
	}
}

func (w *StatsWorker) recompute() {
	day := time.Now()
	if err := w.statsService.RecomputeFor(day); err != nil {
		logger.Error("stats recomputation failed", "error", err.Error())
		return
	}
	logger.Info("daily stats recomputed", "date", day.Format("2006-01-02"))
}
