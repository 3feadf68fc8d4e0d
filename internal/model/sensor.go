package model

import "fmt"

// SensorRole identifies a temperature probe by its function in the plant,
// not by a free-form string key. Every role has a fixed board/channel home.
type SensorRole string

const (
	RoleCollector  SensorRole = "collector"
	RoleTankTop    SensorRole = "tank_top"
	RoleTankBottom SensorRole = "tank_bottom"
	RoleReturnLine SensorRole = "return_line"
)

// Roles lists every role in a stable order, used for polling sweeps and
// status publishing.
var Roles = []SensorRole{RoleCollector, RoleTankTop, RoleTankBottom, RoleReturnLine}

// BoardKind selects which vendor routine serves a channel.
type BoardKind string

const (
	BoardRTD     BoardKind = "rtd"
	BoardMegaBAS BoardKind = "megabas"
)

// SensorAddress is the physical home of one probe: board kind, stack level
// and channel number as the vendor tools count them (1-based).
type SensorAddress struct {
	Kind    BoardKind `json:"kind" mapstructure:"kind"`
	Board   int       `json:"board" mapstructure:"board"`
	Channel int       `json:"channel" mapstructure:"channel"`
}

// Validate checks a single address against the board limits (both the RTD
// and MegaBAS cards expose 8 input channels, stack levels 0..7).
func (a SensorAddress) Validate() error {
	switch a.Kind {
	case BoardRTD, BoardMegaBAS:
	default:
		return fmt.Errorf("unknown board kind %q", a.Kind)
	}
	if a.Board < 0 || a.Board > 7 {
		return fmt.Errorf("board stack level %d out of range 0..7", a.Board)
	}
	if a.Channel < 1 || a.Channel > 8 {
		return fmt.Errorf("channel %d out of range 1..8", a.Channel)
	}
	return nil
}

// SensorMap fixes each role to its physical address. It replaces the
// dict-of-names registry of the original installation; the mapping is
// validated once at startup and never mutated afterwards.
type SensorMap map[SensorRole]SensorAddress

// Validate rejects unknown roles, bad addresses, duplicate physical homes
// and missing required roles. The collector and both tank probes are
// mandatory; the return line probe is optional.
func (m SensorMap) Validate() error {
	seen := make(map[SensorAddress]SensorRole, len(m))
	for role, addr := range m {
		if !knownRole(role) {
			return fmt.Errorf("unknown sensor role %q", role)
		}
		if err := addr.Validate(); err != nil {
			return fmt.Errorf("sensor %s: %w", role, err)
		}
		if prev, dup := seen[addr]; dup {
			return fmt.Errorf("sensors %s and %s share %s board %d channel %d",
				prev, role, addr.Kind, addr.Board, addr.Channel)
		}
		seen[addr] = role
	}
	for _, required := range []SensorRole{RoleCollector, RoleTankTop, RoleTankBottom} {
		if _, ok := m[required]; !ok {
			return fmt.Errorf("required sensor role %q missing from sensor map", required)
		}
	}
	return nil
}

func knownRole(r SensorRole) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}
