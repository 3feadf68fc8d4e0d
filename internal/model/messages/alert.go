package messages

import (
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// Alert severities, low to high.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// WatchdogAlert is published on watchdog/alert when a monitored signal
// degrades to failed, and again (critical) when recovery is exhausted.
type WatchdogAlert struct {
	AlertID   string             `json:"alert_id"`
	Severity  string             `json:"severity"`
	Signal    string             `json:"signal"`
	Status    model.HealthStatus `json:"status"`
	Message   string             `json:"message"`
	Timestamp time.Time          `json:"timestamp"`
}
