package messages

import (
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// Heartbeat statuses. A "stopping" heartbeat tells the watchdog the silence
// that follows is intentional.
const (
	HeartbeatAlive    = "alive"
	HeartbeatStopping = "stopping"
)

// Heartbeat is the periodic liveness message published by the control loop
// and consumed by the watchdog.
type Heartbeat struct {
	Status      string           `json:"status"`
	Timestamp   time.Time        `json:"timestamp"`
	Seq         uint64           `json:"seq"`
	Mode        model.SystemMode `json:"mode"`
	PumpOn      bool             `json:"pump_on"`
	HeaterOn    bool             `json:"heater_on"`
	SensorCount int              `json:"sensor_count"`
}
