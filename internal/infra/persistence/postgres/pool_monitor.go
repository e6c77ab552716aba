package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"dealzpark/config"
)

// poolMonitor samples the connection pool and reports requests that had to
// wait for a free connection since the previous sample.
type poolMonitor struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	interval  time.Duration
	warnAfter time.Duration
	last      sql.DBStats
}

// newPoolMonitor returns nil when monitoring is switched off.
func newPoolMonitor(logger *slog.Logger, stats func() sql.DBStats, cfg *config.DatabaseConfig) *poolMonitor {
	if logger == nil || stats == nil || cfg == nil || cfg.PoolMonitor.Interval <= 0 {
		return nil
	}

	return &poolMonitor{
		logger:    logger.With(slog.String("component", "postgres_pool")),
		stats:     stats,
		interval:  cfg.PoolMonitor.Interval,
		warnAfter: cfg.PoolMonitor.WaitWarnThreshold,
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.last = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.stats()
	prev := m.last
	m.last = cur

	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if m.warnAfter > 0 && waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Requests waited for a database connection",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
