package model

import "fmt"

// RelayAddress is the physical home of one actuator relay on the MegaBAS
// triac outputs.
type RelayAddress struct {
	Board   int `json:"board" mapstructure:"board"`
	Channel int `json:"channel" mapstructure:"channel"`
}

func (r RelayAddress) Validate() error {
	if r.Board < 0 || r.Board > 7 {
		return fmt.Errorf("relay board stack level %d out of range 0..7", r.Board)
	}
	if r.Channel < 1 || r.Channel > 4 {
		return fmt.Errorf("relay channel %d out of range 1..4", r.Channel)
	}
	return nil
}

// ActuatorMap fixes the pump and heater relays, validated at startup like
// the sensor map.
type ActuatorMap struct {
	Pump   RelayAddress `mapstructure:"pump"`
	Heater RelayAddress `mapstructure:"heater"`
}

func (m ActuatorMap) Validate() error {
	if err := m.Pump.Validate(); err != nil {
		return fmt.Errorf("pump: %w", err)
	}
	if err := m.Heater.Validate(); err != nil {
		return fmt.Errorf("heater: %w", err)
	}
	if m.Pump == m.Heater {
		return fmt.Errorf("pump and heater share relay board %d channel %d", m.Pump.Board, m.Pump.Channel)
	}
	return nil
}
