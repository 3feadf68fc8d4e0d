package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// StateMachine owns SystemState. Tick is the only mutation path and runs
// inside the controller's per-cycle critical section.
type StateMachine struct {
	params model.ControlParameters
	log    *logger.Logger

	state model.SystemState

	// Latches for the two-threshold bands.
	overheated   bool
	cooling      bool
	boostEngaged bool

	boostAfterMin int // minutes since local midnight; -1 disables the boost
}

func NewStateMachine(params model.ControlParameters, log *logger.Logger) *StateMachine {
	return &StateMachine{
		params:        params,
		log:           log,
		state:         model.SystemState{Mode: model.ModeStartup},
		boostAfterMin: parseClock(params.HeaterBoostAfter),
	}
}

// Params returns the active control parameters.
func (sm *StateMachine) Params() model.ControlParameters { return sm.params }

// SetParams replaces the parameters through the audited override path.
func (sm *StateMachine) SetParams(p model.ControlParameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	sm.log.Infow("control parameters overridden",
		"dt_start_c", p.DTStartC, "dt_stop_c", p.DTStopC, "target_tank_c", p.TargetTankC)
	sm.params = p
	sm.boostAfterMin = parseClock(p.HeaterBoostAfter)
	return nil
}

// Tick evaluates one control cycle in fixed precedence order: overheat,
// manual, test, auto/eco thermostat, collector cooling, heater boost, then
// the fail-safe sweep. It returns the new state and the actuator commands.
func (sm *StateMachine) Tick(temps map[model.SensorRole]model.HealthReading, ov model.Overrides, now time.Time) (model.SystemState, model.ActuatorCommands) {
	p := sm.params
	collector, haveCollector := usable(temps, model.RoleCollector)
	tankBottom, haveTankBottom := usable(temps, model.RoleTankBottom)
	tankTop, haveTankTop := usable(temps, model.RoleTankTop)

	var cmds model.ActuatorCommands

	// 1. Overheat latch. Needs a usable collector reading; without one the
	// fail-safe below wins anyway.
	if haveCollector {
		if collector >= p.BoilC {
			if !sm.overheated {
				sm.log.Warnw("collector boiling, entering overheat protection", "collector_c", collector, "boil_c", p.BoilC)
			}
			sm.overheated = true
		} else if sm.overheated && collector <= p.BoilC-p.BoilHystC {
			sm.log.Infow("overheat cleared", "collector_c", collector)
			sm.overheated = false
		}
	}

	// Collector cooling latch, evaluated up front because it applies in
	// overheat and in auto alike.
	if haveCollector {
		if collector >= p.CollectorCoolingC {
			sm.cooling = true
		} else if sm.cooling && collector <= p.CollectorCoolingC-p.CollectorCoolingHystC {
			sm.cooling = false
		}
	}

	switch {
	case sm.overheated && haveCollector:
		cmds.PumpOn = sm.cooling
		cmds.HeaterOn = false
		sm.apply(model.ModeOverheated, cmds, ov, now)
		return sm.state, cmds

	case ov.Manual:
		// Operator commands verbatim, bypassing the thermostat and the
		// sensor fail-safe.
		cmds.PumpOn = ov.Pump
		cmds.HeaterOn = ov.Heater
		sm.apply(model.ModeManual, cmds, ov, now)
		return sm.state, cmds
	}

	// Fail-safe: every remaining path decides on sensor input. A degraded
	// reading is used as-is; a failed required sensor forces standby.
	if !haveCollector || !haveTankBottom || !haveTankTop {
		cmds.PumpOn = false
		cmds.HeaterOn = false
		sm.boostEngaged = false
		sm.apply(model.ModeStandby, cmds, ov, now)
		return sm.state, cmds
	}

	// 4. Two-threshold thermostat on dT, holding the previous pump state
	// inside the band to prevent short-cycling.
	dT := collector - tankBottom
	pump := sm.state.PumpOn
	switch {
	case dT >= p.DTStartC:
		pump = true
	case dT <= p.DTStopC:
		pump = false
	}

	// 5. Collector cooling forces the pump regardless of dT.
	if sm.cooling {
		pump = true
	}
	cmds.PumpOn = pump

	// 6. Heater boost, auto mode only. Eco never boosts.
	heater := false
	if ov.BaseMode != model.ModeEco && sm.boostAfterMin >= 0 {
		pastDeadline := minutesOfDay(now) >= sm.boostAfterMin
		if sm.boostEngaged {
			heater = tankTop < p.TargetTankC+p.HeaterReleaseHystC
		} else if pastDeadline && tankTop < p.HeaterBoostBelowC {
			heater = true
			sm.log.Infow("heater boost engaged", "tank_top_c", tankTop, "deadline", sm.params.HeaterBoostAfter)
		}
	}
	sm.boostEngaged = heater
	cmds.HeaterOn = heater

	mode := ov.BaseMode
	if mode != model.ModeEco {
		mode = model.ModeAuto
	}
	if heater {
		mode = model.ModeHeating
	}
	if ov.Test {
		cmds.Simulated = true
		mode = model.ModeTest
	}
	sm.apply(mode, cmds, ov, now)
	return sm.state, cmds
}

// ForceStandby is the actuator-failure path: mode standby, everything off.
func (sm *StateMachine) ForceStandby(now time.Time) model.SystemState {
	sm.boostEngaged = false
	sm.apply(model.ModeStandby, model.ActuatorCommands{}, model.Overrides{}, now)
	return sm.state
}

// State returns a copy of the current state.
func (sm *StateMachine) State() model.SystemState { return sm.state }

func (sm *StateMachine) apply(mode model.SystemMode, cmds model.ActuatorCommands, ov model.Overrides, now time.Time) {
	if sm.state.Mode != mode {
		sm.log.Infow("mode change", "from", sm.state.Mode, "to", mode)
	}
	sm.state = model.SystemState{
		Mode:           mode,
		PumpOn:         cmds.PumpOn,
		HeaterOn:       cmds.HeaterOn,
		ManualOverride: ov.Manual,
		TestMode:       ov.Test,
		LastUpdate:     now,
	}
}

// usable returns the value for a role when the reading carries one
// (healthy or degraded). A failed reading yields ok=false.
func usable(temps map[model.SensorRole]model.HealthReading, role model.SensorRole) (float64, bool) {
	r, ok := temps[role]
	if !ok || !r.Valid {
		return 0, false
	}
	return r.ValueC, true
}

// parseClock turns "HH:MM" into minutes since midnight, -1 when unset or
// malformed.
func parseClock(s string) int {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
