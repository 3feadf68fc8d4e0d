package messages

import (
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// SensorStatus is one role's slice of the published status: the value in
// use this cycle (last-known-good while degraded), its health verdict and
// the monitor's error counters.
type SensorStatus struct {
	ValueC            float64            `json:"value_c"`
	Status            model.HealthStatus `json:"status"`
	ConsecutiveErrors int                `json:"consecutive_errors,omitempty"`
	TotalErrors       int                `json:"total_errors,omitempty"`
	At                time.Time          `json:"at"`
}

// EnergyTotals mirrors the ledger for publication. CollectedTodayKWh is
// always the sum over SourcesTodayKWh, never tracked separately.
type EnergyTotals struct {
	SourcesTodayKWh    map[string]float64 `json:"sources_today_kwh"`
	SourcesLifetimeKWh map[string]float64 `json:"sources_lifetime_kwh"`
	CollectedTodayKWh  float64            `json:"collected_today_kwh"`
	LastResetDate      string             `json:"last_reset_date"`
}

// StatusSnapshot is the full externally visible state, published every
// publish interval. A failed sensor or a fail-safe standby is reported
// here, never hidden.
type StatusSnapshot struct {
	Mode      model.SystemMode                     `json:"mode"`
	PumpOn    bool                                 `json:"pump_on"`
	HeaterOn  bool                                 `json:"heater_on"`
	Sensors   map[model.SensorRole]SensorStatus    `json:"sensors"`
	Energy    EnergyTotals                         `json:"energy"`
	Timestamp time.Time                            `json:"timestamp"`
}

// SensorReadingMessage is the per-sensor calibrated reading published on
// status/sensors/<role>.
type SensorReadingMessage struct {
	Role      model.SensorRole   `json:"role"`
	ValueC    float64            `json:"value_c"`
	Status    model.HealthStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}
