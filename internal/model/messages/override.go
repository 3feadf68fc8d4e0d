package messages

import (
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// Override targets.
const (
	OverrideDevicePump   = "pump"
	OverrideDeviceHeater = "heater"
	OverrideDeviceMode   = "mode"
	OverrideDeviceParams = "params"
)

// Override values. Pump/heater take on/off/clear; mode takes one of the
// mode values or clear.
const (
	OverrideOn    = "on"
	OverrideOff   = "off"
	OverrideClear = "clear"

	OverrideModeAuto   = "auto"
	OverrideModeEco    = "eco"
	OverrideModeManual = "manual"
	OverrideModeTest   = "test"
)

// OverrideCommand is an operator command received on command/override.
// CommandID deduplicates QoS1 redeliveries. Params carries a full parameter
// set for device "params" and is ignored otherwise.
type OverrideCommand struct {
	CommandID string                   `json:"command_id"`
	Device    string                   `json:"device"`
	Value     string                   `json:"value"`
	Params    *model.ControlParameters `json:"params,omitempty"`
	Source    string                   `json:"source,omitempty"`
	Timestamp time.Time                `json:"timestamp"`
}
