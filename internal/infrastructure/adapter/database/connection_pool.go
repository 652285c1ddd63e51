package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int    `json:"openConnections"`
	IdleConnections    int    `json:"idleConnections"`
	MaxOpenConnections int    `json:"maxOpenConnections"`
	InUse              int    `json:"inUse"`
	WaitCount          int64  `json:"waitCount"`
	WaitDuration       string `json:"waitDuration"`
	MaxIdleClosed      int64  `json:"maxIdleClosed"`
	MaxLifetimeClosed  int64  `json:"maxLifetimeClosed"`
}

// metricsFromStats converts database/sql pool statistics
func metricsFromStats(stats sql.DBStats) ConnectionPoolMetrics {
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

// PoolStatsSource is implemented by *sql.DB
type PoolStatsSource interface {
	Stats() sql.DBStats
}

// ConnectionPoolMonitor periodically samples the connection pool and warns when it is nearly exhausted
type ConnectionPoolMonitor struct {
	source       PoolStatsSource
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(source PoolStatsSource, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		source:   source,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collectMetrics()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collectMetrics()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring; safe to call more than once
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// GetMetrics returns the last sampled connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}

	return *m.metricsCache
}

// collectMetrics collects current connection pool metrics
func (m *ConnectionPoolMonitor) collectMetrics() {
	stats := m.source.Stats()
	metrics := metricsFromStats(stats)

	m.mutex.Lock()
	m.metricsCache = &metrics
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}

// HealthStatus is the result of a database health check
type HealthStatus struct {
	Status  string                `json:"status"`
	Error   string                `json:"error,omitempty"`
	Latency string                `json:"latency"`
	Pool    ConnectionPoolMetrics `json:"pool"`
}

// Health status values
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// Pinger is implemented by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// checkHealth pings the database and reports the current pool metrics
func checkHealth(ctx context.Context, pinger Pinger, source PoolStatsSource, timeProvider coreport.TimeProvider, timeout time.Duration) HealthStatus {
	ctx, cancel := timeProvider.WithTimeout(ctx, coreport.Duration(timeout))
	defer cancel()

	start := timeProvider.Now()
	err := pinger.PingContext(ctx)
	status := HealthStatus{
		Status:  StatusUp,
		Latency: timeProvider.Since(start).Std().String(),
		Pool:    metricsFromStats(source.Stats()),
	}
	if err != nil {
		status.Status = StatusDown
		status.Error = err.Error()
	}
	return status
}
