package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"dealzpark/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPoolMonitor(t *testing.T, buf *bytes.Buffer, samples ...sql.DBStats) *poolMonitor {
	t.Helper()

	next := 0
	stats := func() sql.DBStats {
		s := samples[next]
		if next < len(samples)-1 {
			next++
		}

		return s
	}

	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := newPoolMonitor(logger, stats, &config.DatabaseConfig{
		PoolMonitor: config.PoolMonitorConfig{Interval: time.Second, WaitWarnThreshold: 50 * time.Millisecond},
	})
	require.NotNil(t, m)
	m.last = m.stats()

	return m
}

func TestNewPoolMonitor_Disabled(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	stats := func() sql.DBStats { return sql.DBStats{} }

	assert.Nil(t, newPoolMonitor(logger, stats, nil))
	assert.Nil(t, newPoolMonitor(logger, stats, &config.DatabaseConfig{}))
}

func TestPoolMonitor_QuietWithoutWaits(t *testing.T) {
	var buf bytes.Buffer
	m := newTestPoolMonitor(t, &buf,
		sql.DBStats{WaitCount: 4, WaitDuration: time.Second},
		sql.DBStats{WaitCount: 4, WaitDuration: time.Second, InUse: 3},
	)

	m.sample(context.Background())

	assert.Empty(t, buf.String())
}

func TestPoolMonitor_ReportsWaitsSinceLastSample(t *testing.T) {
	var buf bytes.Buffer
	m := newTestPoolMonitor(t, &buf,
		sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond},
		sql.DBStats{WaitCount: 4, WaitDuration: 30 * time.Millisecond, MaxOpenConnections: 10, InUse: 10},
		sql.DBStats{WaitCount: 6, WaitDuration: 130 * time.Millisecond, MaxOpenConnections: 10, InUse: 10},
	)
	ctx := context.Background()

	m.sample(ctx)
	m.sample(ctx)

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)

	assert.Equal(t, "DEBUG", records[0]["level"])
	assert.EqualValues(t, 2, records[0]["waits"])
	assert.EqualValues(t, 20*time.Millisecond, records[0]["waited"])
	assert.EqualValues(t, 10*time.Millisecond, records[0]["avg_wait"])
	assert.Equal(t, "postgres_pool", records[0]["component"])

	assert.Equal(t, "WARN", records[1]["level"])
	assert.EqualValues(t, 100*time.Millisecond, records[1]["waited"])
	assert.EqualValues(t, 10, records[1]["in_use"])
}
