package controller

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// HealthConfig shapes the per-sensor retry and staleness policy.
type HealthConfig struct {
	MaxRetries     int           `mapstructure:"max_retries"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	StaleAfter     time.Duration `mapstructure:"stale_after"`
}

func (c *HealthConfig) applyDefaults() {
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = 50 * time.Millisecond
	}
	if c.StaleAfter <= 0 {
		c.StaleAfter = 5 * time.Minute
	}
}

// HealthMonitor wraps the driver adapter with bounded retry/backoff and
// last-known-good tracking. It owns every SensorHealthRecord; the mutex
// covers record mutation by the collector against snapshot reads by the
// decision loop.
type HealthMonitor struct {
	driver  DriverAdapter
	sensors model.SensorMap
	cfg     HealthConfig
	log     *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	records map[model.SensorRole]*model.SensorHealthRecord
}

func NewHealthMonitor(driver DriverAdapter, sensors model.SensorMap, cfg HealthConfig, log *logger.Logger) *HealthMonitor {
	cfg.applyDefaults()
	records := make(map[model.SensorRole]*model.SensorHealthRecord, len(sensors))
	for role := range sensors {
		records[role] = &model.SensorHealthRecord{Role: role, Status: model.HealthUnknown}
	}
	return &HealthMonitor{
		driver:  driver,
		sensors: sensors,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
		records: records,
	}
}

// ReadWithHealth attempts the driver read up to MaxRetries times with
// exponential backoff, then falls back to last-known-good within the
// staleness window. The returned reading is marked Valid=false only when
// the sensor is failed; callers must not substitute a numeric default in
// that case.
func (m *HealthMonitor) ReadWithHealth(ctx context.Context, role model.SensorRole) model.HealthReading {
	m.mu.Lock()
	rec, ok := m.records[role]
	m.mu.Unlock()
	if !ok {
		return model.HealthReading{Role: role, Status: model.HealthFailed, At: m.now()}
	}
	addr := m.sensors[role]

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = m.cfg.InitialBackoff
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	value, err := backoff.RetryWithData(func() (float64, error) {
		return m.driver.ReadSensor(ctx, addr)
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(m.cfg.MaxRetries-1)), ctx))

	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		rec.ConsecutiveErrors = 0
		rec.LastKnownGood = &model.LastKnownGood{ValueC: value, Timestamp: now}
		m.transition(rec, model.HealthHealthy, "")
		return model.HealthReading{Role: role, ValueC: value, Valid: true, Status: model.HealthHealthy, At: now}
	}

	rec.ConsecutiveErrors++
	rec.TotalErrors++

	if lkg := rec.LastKnownGood; lkg != nil && now.Sub(lkg.Timestamp) < m.cfg.StaleAfter {
		m.transition(rec, model.HealthDegraded, err.Error())
		return model.HealthReading{Role: role, ValueC: lkg.ValueC, Valid: true, Status: model.HealthDegraded, At: now}
	}
	m.transition(rec, model.HealthFailed, err.Error())
	return model.HealthReading{Role: role, Valid: false, Status: model.HealthFailed, At: now}
}

// transition records a status change and logs it exactly once, so a sensor
// flapping every poll does not flood the log.
func (m *HealthMonitor) transition(rec *model.SensorHealthRecord, to model.HealthStatus, cause string) {
	if rec.Status == to {
		return
	}
	from := rec.Status
	rec.Status = to
	switch to {
	case model.HealthHealthy:
		m.log.Infow("sensor recovered", "role", rec.Role, "from", from, "total_errors", rec.TotalErrors)
	case model.HealthDegraded:
		m.log.Warnw("sensor degraded, using last known good",
			"role", rec.Role, "from", from, "consecutive_errors", rec.ConsecutiveErrors, "cause", cause)
	case model.HealthFailed:
		m.log.Errorw("sensor failed, no usable value",
			"role", rec.Role, "from", from, "consecutive_errors", rec.ConsecutiveErrors, "cause", cause)
	}
}

// Records returns a copy of every health record for status publishing.
func (m *HealthMonitor) Records() []model.SensorHealthRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.SensorHealthRecord, 0, len(m.records))
	for _, role := range model.Roles {
		rec, ok := m.records[role]
		if !ok {
			continue
		}
		cp := *rec
		if rec.LastKnownGood != nil {
			lkg := *rec.LastKnownGood
			cp.LastKnownGood = &lkg
		}
		out = append(out, cp)
	}
	return out
}
