package controller

import (
	"testing"
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

func readings(collectorC, tankTopC, tankBottomC float64) map[model.SensorRole]model.HealthReading {
	return map[model.SensorRole]model.HealthReading{
		model.RoleCollector:  {Role: model.RoleCollector, ValueC: collectorC, Valid: true, Status: model.HealthHealthy},
		model.RoleTankTop:    {Role: model.RoleTankTop, ValueC: tankTopC, Valid: true, Status: model.HealthHealthy},
		model.RoleTankBottom: {Role: model.RoleTankBottom, ValueC: tankBottomC, Valid: true, Status: model.HealthHealthy},
	}
}

func newTestMachine(t *testing.T) *StateMachine {
	t.Helper()
	return NewStateMachine(model.DefaultControlParameters(), logger.Get(logger.ErrorLevel))
}

func noon(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestTick_AutoPumpOnAtLargeDifferential(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	// collector=95, tank=40: dT=55 well above start threshold, and 95 is
	// below the boil threshold, so the mode stays auto.
	state, cmds := sm.Tick(readings(95, 45, 40), model.Overrides{}, noon(t))
	if !cmds.PumpOn {
		t.Fatalf("pump should be on at dT=55")
	}
	if state.Mode != model.ModeAuto {
		t.Fatalf("mode = %s, want auto", state.Mode)
	}
	if cmds.HeaterOn {
		t.Fatalf("heater must stay off before the boost deadline")
	}
}

func TestTick_HysteresisHoldsPreviousPumpState(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)
	now := noon(t)

	// dT=6 sits between stop (4) and start (8): pump holds its previous
	// state, off at first.
	if _, cmds := sm.Tick(readings(46, 42, 40), model.Overrides{}, now); cmds.PumpOn {
		t.Fatalf("pump must stay off inside the dead band from off")
	}
	// dT=10 turns it on.
	if _, cmds := sm.Tick(readings(50, 42, 40), model.Overrides{}, now); !cmds.PumpOn {
		t.Fatalf("pump must turn on at dT >= start")
	}
	// Back inside the band: holds on.
	if _, cmds := sm.Tick(readings(46, 42, 40), model.Overrides{}, now); !cmds.PumpOn {
		t.Fatalf("pump must stay on inside the dead band from on")
	}
	// dT=4 turns it off.
	if _, cmds := sm.Tick(readings(44, 42, 40), model.Overrides{}, now); cmds.PumpOn {
		t.Fatalf("pump must turn off at dT <= stop")
	}
}

func TestTick_OverheatLatchAndRelease(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)
	now := noon(t)

	state, cmds := sm.Tick(readings(155, 58, 50), model.Overrides{}, now)
	if state.Mode != model.ModeOverheated {
		t.Fatalf("mode = %s, want overheated at collector 155", state.Mode)
	}
	if cmds.HeaterOn {
		t.Fatalf("heater must be off while overheated")
	}
	if !cmds.PumpOn {
		t.Fatalf("pump must dump heat while the collector is above the cooling threshold")
	}

	// 140 is below boil (150) but above boil - hysteresis (135): still latched.
	if state, _ = sm.Tick(readings(140, 58, 50), model.Overrides{}, now); state.Mode != model.ModeOverheated {
		t.Fatalf("overheat must stay latched at 140, got %s", state.Mode)
	}

	// 130 clears the latch.
	if state, _ = sm.Tick(readings(130, 58, 50), model.Overrides{}, now); state.Mode == model.ModeOverheated {
		t.Fatalf("overheat must clear below boil - hysteresis")
	}
}

func TestTick_CollectorCoolingForcesPump(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	// Collector at 125 with the tank at 124: dT=1 would keep the pump off,
	// but the cooling threshold forces it on.
	_, cmds := sm.Tick(readings(125, 124, 124), model.Overrides{}, noon(t))
	if !cmds.PumpOn {
		t.Fatalf("collector cooling must force the pump on regardless of dT")
	}
}

func TestTick_FailedRequiredSensorForcesStandby(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	temps := readings(95, 45, 40)
	temps[model.RoleCollector] = model.HealthReading{Role: model.RoleCollector, Valid: false, Status: model.HealthFailed}

	state, cmds := sm.Tick(temps, model.Overrides{}, noon(t))
	if state.Mode != model.ModeStandby {
		t.Fatalf("mode = %s, want standby with a failed collector", state.Mode)
	}
	if cmds.PumpOn || cmds.HeaterOn {
		t.Fatalf("all actuators must be off in standby")
	}
}

func TestTick_DegradedReadingStillControls(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	temps := readings(95, 45, 40)
	temps[model.RoleCollector] = model.HealthReading{Role: model.RoleCollector, ValueC: 95, Valid: true, Status: model.HealthDegraded}

	state, cmds := sm.Tick(temps, model.Overrides{}, noon(t))
	if state.Mode != model.ModeAuto || !cmds.PumpOn {
		t.Fatalf("degraded last-known-good must keep controlling, got mode=%s pump=%v", state.Mode, cmds.PumpOn)
	}
}

func TestTick_ManualOverrideBypassesThermostat(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	// dT=0, yet manual commands are obeyed verbatim.
	ov := model.Overrides{Manual: true, Pump: true, Heater: true}
	state, cmds := sm.Tick(readings(40, 40, 40), ov, noon(t))
	if state.Mode != model.ModeManual {
		t.Fatalf("mode = %s, want manual", state.Mode)
	}
	if !cmds.PumpOn || !cmds.HeaterOn {
		t.Fatalf("manual commands not obeyed: %+v", cmds)
	}
}

func TestTick_OverheatWinsOverManual(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	ov := model.Overrides{Manual: true, Pump: false, Heater: true}
	state, cmds := sm.Tick(readings(155, 58, 50), ov, noon(t))
	if state.Mode != model.ModeOverheated {
		t.Fatalf("overheat protection must take precedence over manual, got %s", state.Mode)
	}
	if cmds.HeaterOn {
		t.Fatalf("heater must be off while overheated even under manual override")
	}
}

func TestTick_HeaterBoostAfterDeadline(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)
	evening := time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC)

	// Tank top below the boost threshold after 17:00: heater engages.
	state, cmds := sm.Tick(readings(45, 40, 38), model.Overrides{}, evening)
	if !cmds.HeaterOn {
		t.Fatalf("heater must boost below %v after the deadline", 45.0)
	}
	if state.Mode != model.ModeHeating {
		t.Fatalf("mode = %s, want heating", state.Mode)
	}

	// Holds on through the band, releases at target + hysteresis.
	if _, cmds = sm.Tick(readings(45, 61, 55), model.Overrides{}, evening); !cmds.HeaterOn {
		t.Fatalf("heater must hold until target + release hysteresis")
	}
	if _, cmds = sm.Tick(readings(45, 63, 55), model.Overrides{}, evening); cmds.HeaterOn {
		t.Fatalf("heater must release above target + release hysteresis")
	}
}

func TestTick_NoBoostBeforeDeadlineOrInEco(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC)

	sm := newTestMachine(t)
	if _, cmds := sm.Tick(readings(45, 40, 38), model.Overrides{}, morning); cmds.HeaterOn {
		t.Fatalf("heater must not boost before the deadline")
	}

	eco := newTestMachine(t)
	state, cmds := eco.Tick(readings(45, 40, 38), model.Overrides{BaseMode: model.ModeEco}, evening)
	if cmds.HeaterOn {
		t.Fatalf("eco mode must never boost")
	}
	if state.Mode != model.ModeEco {
		t.Fatalf("mode = %s, want eco", state.Mode)
	}
}

func TestTick_TestModeRoutesToSimulatedActuators(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	state, cmds := sm.Tick(readings(95, 45, 40), model.Overrides{Test: true}, noon(t))
	if !cmds.Simulated {
		t.Fatalf("test mode must flag commands as simulated")
	}
	if state.Mode != model.ModeTest {
		t.Fatalf("mode = %s, want test", state.Mode)
	}
}

func TestSetParams_RejectsBadThresholdOrder(t *testing.T) {
	t.Parallel()
	sm := newTestMachine(t)

	p := model.DefaultControlParameters()
	p.DTStartC = 3
	p.DTStopC = 4
	if err := sm.SetParams(p); err == nil {
		t.Fatalf("expected threshold ordering error")
	}
	if sm.Params().DTStartC != 8 {
		t.Fatalf("rejected params must not be applied")
	}

	good := model.DefaultControlParameters()
	good.TargetTankC = 55
	if err := sm.SetParams(good); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
	if sm.Params().TargetTankC != 55 {
		t.Fatalf("accepted params must be applied")
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want int
	}{
		{"17:00", 1020},
		{"00:00", 0},
		{"23:59", 1439},
		{" 8:30 ", 510},
		{"", -1},
		{"25:00", -1},
		{"17", -1},
		{"17:xx", -1},
	}
	for _, tc := range cases {
		if got := parseClock(tc.in); got != tc.want {
			t.Errorf("parseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
