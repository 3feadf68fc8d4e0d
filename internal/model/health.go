package model

import "time"

// HealthStatus is the shared Healthy/Degraded/Failed vocabulary used by the
// sensor health monitor and by the watchdog's per-signal state machines.
type HealthStatus string

const (
	HealthUnknown  HealthStatus = "unknown"
	HealthHealthy  HealthStatus = "healthy"
	HealthDegraded HealthStatus = "degraded"
	HealthFailed   HealthStatus = "failed"
)

// LastKnownGood is the most recent successfully read value, kept as a
// bounded-staleness substitute during transient failures.
type LastKnownGood struct {
	ValueC    float64   `json:"value_c"`
	Timestamp time.Time `json:"timestamp"`
}

// SensorHealthRecord tracks one physical sensor for the lifetime of the
// control process. Owned exclusively by the sensor health monitor.
type SensorHealthRecord struct {
	Role              SensorRole     `json:"role"`
	Status            HealthStatus   `json:"status"`
	LastKnownGood     *LastKnownGood `json:"last_known_good,omitempty"`
	ConsecutiveErrors int            `json:"consecutive_errors"`
	TotalErrors       int            `json:"total_errors"`
}

// HealthReading pairs the usable value (if any) with the health verdict for
// one sensor in one cycle. Valid is false only when Status is failed.
type HealthReading struct {
	Role   SensorRole
	ValueC float64
	Valid  bool
	Status HealthStatus
	At     time.Time
}
