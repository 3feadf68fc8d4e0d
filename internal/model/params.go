package model

import (
	"errors"
	"fmt"
)

// ControlParameters is the immutable configuration value object driving the
// state machine and the energy ledger. Loaded once at startup; the only
// mutation path afterwards is an explicit, logged operator override.
type ControlParameters struct {
	// Pump thermostat on dT = collector - tank.
	TargetTankC float64 `mapstructure:"target_tank_c"`
	DTStartC    float64 `mapstructure:"dt_start_c"`
	DTStopC     float64 `mapstructure:"dt_stop_c"`

	// Collector protection.
	CollectorCoolingC     float64 `mapstructure:"collector_cooling_c"`
	CollectorCoolingHystC float64 `mapstructure:"collector_cooling_hyst_c"`
	BoilC                 float64 `mapstructure:"boil_c"`
	BoilHystC             float64 `mapstructure:"boil_hyst_c"`

	// Auxiliary heater boost: in auto mode the heater engages when the tank
	// is still below this temperature at the boost deadline (local clock,
	// "HH:MM"), and releases at target + hysteresis.
	HeaterBoostBelowC  float64 `mapstructure:"heater_boost_below_c"`
	HeaterBoostAfter   string  `mapstructure:"heater_boost_after"`
	HeaterReleaseHystC float64 `mapstructure:"heater_release_hyst_c"`

	// Tank physics, used by the energy ledger.
	TankMassKg        float64 `mapstructure:"tank_mass_kg"`
	SpecificHeatKJKgC float64 `mapstructure:"specific_heat_kj_kg_c"`
	MaxSafeTankC      float64 `mapstructure:"max_safe_tank_c"`
	BaselineTankC     float64 `mapstructure:"baseline_tank_c"`
}

var errThresholdOrder = errors.New("dt_start_c must be greater than dt_stop_c, and dt_stop_c must be >= 0")

// Validate enforces the threshold ordering the hysteresis control depends
// on, plus basic physical sanity for the ledger bounds check.
func (p ControlParameters) Validate() error {
	if !(p.DTStartC > p.DTStopC && p.DTStopC >= 0) {
		return errThresholdOrder
	}
	if p.BoilHystC <= 0 || p.CollectorCoolingHystC <= 0 {
		return errors.New("boil and collector cooling hysteresis must be positive")
	}
	if p.BoilC <= p.CollectorCoolingC {
		return fmt.Errorf("boil_c (%.1f) must be above collector_cooling_c (%.1f)", p.BoilC, p.CollectorCoolingC)
	}
	if p.TankMassKg <= 0 || p.SpecificHeatKJKgC <= 0 {
		return errors.New("tank_mass_kg and specific_heat_kj_kg_c must be positive")
	}
	if p.MaxSafeTankC <= p.BaselineTankC {
		return fmt.Errorf("max_safe_tank_c (%.1f) must be above baseline_tank_c (%.1f)", p.MaxSafeTankC, p.BaselineTankC)
	}
	return nil
}

// DefaultControlParameters mirrors the installation the controller ships
// for: a 750 l tank behind a 12 m² collector field.
func DefaultControlParameters() ControlParameters {
	return ControlParameters{
		TargetTankC:           60,
		DTStartC:              8,
		DTStopC:               4,
		CollectorCoolingC:     120,
		CollectorCoolingHystC: 10,
		BoilC:                 150,
		BoilHystC:             15,
		HeaterBoostBelowC:     45,
		HeaterBoostAfter:      "17:00",
		HeaterReleaseHystC:    2,
		TankMassKg:            750,
		SpecificHeatKJKgC:     4.186,
		MaxSafeTankC:          95,
		BaselineTankC:         10,
	}
}
