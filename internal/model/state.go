package model

import "time"

// SystemMode is the operating mode reported in every status message.
type SystemMode string

const (
	ModeStartup    SystemMode = "startup"
	ModeAuto       SystemMode = "auto"
	ModeEco        SystemMode = "eco"
	ModeHeating    SystemMode = "heating"
	ModeManual     SystemMode = "manual"
	ModeTest       SystemMode = "test"
	ModeStandby    SystemMode = "standby"
	ModeOverheated SystemMode = "overheated"
)

// SystemState is the single control-loop state record. One instance, owned
// by the control state machine, mutated only inside a control-cycle critical
// section. Everything published outward is a copy.
type SystemState struct {
	Mode           SystemMode `json:"mode"`
	PumpOn         bool       `json:"pump_on"`
	HeaterOn       bool       `json:"heater_on"`
	ManualOverride bool       `json:"manual_override"`
	TestMode       bool       `json:"test_mode"`
	LastUpdate     time.Time  `json:"last_update"`
}

// ActuatorCommands is the output of one control tick: the desired relay
// states, plus whether they must be routed to the simulated driver.
type ActuatorCommands struct {
	PumpOn    bool
	HeaterOn  bool
	Simulated bool
}

// Overrides carries the operator's standing instructions into a tick.
// When Manual is set, Pump/Heater are obeyed verbatim.
type Overrides struct {
	Manual   bool
	Pump     bool
	Heater   bool
	Test     bool
	BaseMode SystemMode // ModeAuto or ModeEco
}
