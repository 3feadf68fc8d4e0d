package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model/messages"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/pkg/dedup"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/pkg/mqttbus"
)

// Config shapes the control loop timing.
type Config struct {
	CycleInterval     time.Duration `mapstructure:"cycle_interval"`
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
	SnapshotPath      string        `mapstructure:"snapshot_path"`
}

func (c *Config) applyDefaults() {
	if c.CycleInterval <= 0 {
		c.CycleInterval = 10 * time.Second
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = 30 * time.Second
	}
	if c.SnapshotPath == "" {
		c.SnapshotPath = "/var/lib/sunheat/ledger.json"
	}
}

// Service wires the whole control process together: a collector goroutine
// reading sensors through the health monitor, the decision loop owning the
// state machine and the energy ledger behind one mutex, and a publisher
// goroutine pushing status and heartbeats to the broker. Readings flow
// collector to decision over a channel as immutable snapshots; the
// publisher only ever sees deep copies.
type Service struct {
	cfg       Config
	log       *logger.Logger
	bus       *mqttbus.Bus
	driver    DriverAdapter
	health    *HealthMonitor
	sm        *StateMachine
	ledger    *EnergyLedger
	store     *SnapshotStore
	metrics   *Metrics
	telemetry *Telemetry
	sensors   model.SensorMap
	actuators model.ActuatorMap
	dedup     *dedup.Deduper

	mu sync.Mutex
	ov model.Overrides

	readings  chan map[model.SensorRole]model.HealthReading
	snapshots chan messages.StatusSnapshot
}

func New(cfg Config, bus *mqttbus.Bus, driver DriverAdapter, health *HealthMonitor,
	sm *StateMachine, sensors model.SensorMap, actuators model.ActuatorMap,
	metrics *Metrics, telemetry *Telemetry, log *logger.Logger) *Service {

	cfg.applyDefaults()
	store := NewSnapshotStore(cfg.SnapshotPath, log)
	ledger := NewEnergyLedger(sm.Params(), log)
	ledger.Restore(store.Load())

	return &Service{
		cfg:       cfg,
		log:       log,
		bus:       bus,
		driver:    driver,
		health:    health,
		sm:        sm,
		ledger:    ledger,
		store:     store,
		metrics:   metrics,
		telemetry: telemetry,
		sensors:   sensors,
		actuators: actuators,
		dedup:     dedup.New(10*time.Minute, 1000),
		ov:        model.Overrides{BaseMode: model.ModeAuto},
		readings:  make(chan map[model.SensorRole]model.HealthReading, 1),
		snapshots: make(chan messages.StatusSnapshot, 4),
	}
}

// Run blocks until ctx is cancelled, then performs the ordered shutdown:
// actuators off, a final "stopping" heartbeat, ledger snapshot. The caller
// closes the bus afterwards.
func (s *Service) Run(ctx context.Context) error {
	if err := s.bus.Subscribe(messages.TopicOverride, 1, s.onOverride); err != nil {
		return fmt.Errorf("subscribe overrides: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.collectLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		s.publishLoop(ctx)
	}()

	s.log.Infow("control loop started",
		"cycle_interval", s.cfg.CycleInterval, "heartbeat_interval", s.cfg.HeartbeatInterval)

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			s.shutdown()
			return nil
		case temps := <-s.readings:
			s.cycle(ctx, temps)
		}
	}
}

// collectLoop polls every sensor through the health monitor each cycle
// interval. When the decision loop is still busy with the previous cycle
// the fresh snapshot replaces the queued one rather than piling up.
func (s *Service) collectLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.CycleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		temps := s.collectOnce(ctx)
		select {
		case s.readings <- temps:
		default:
			select {
			case <-s.readings:
			default:
			}
			select {
			case s.readings <- temps:
			default:
			}
		}
	}
}

// collectOnce sweeps every configured sensor under a single deadline of one
// cycle interval, so a slow or wedged driver cannot stretch a sweep across
// several cycles. Roles not reached before the deadline are reported failed
// for this cycle without charging the sensor's error counters.
func (s *Service) collectOnce(ctx context.Context) map[model.SensorRole]model.HealthReading {
	sctx, cancel := context.WithTimeout(ctx, s.cfg.CycleInterval)
	defer cancel()

	temps := make(map[model.SensorRole]model.HealthReading, len(s.sensors))
	for _, role := range model.Roles {
		if _, ok := s.sensors[role]; !ok {
			continue
		}
		if sctx.Err() != nil {
			temps[role] = model.HealthReading{Role: role, Status: model.HealthFailed, At: time.Now()}
			continue
		}
		temps[role] = s.health.ReadWithHealth(sctx, role)
	}
	return temps
}

// cycle is the per-cycle critical section: tick the state machine, drive
// the relays, book energy, then hand a deep copy to the publisher.
func (s *Service) cycle(ctx context.Context, temps map[model.SensorRole]model.HealthReading) {
	now := time.Now()

	s.mu.Lock()
	ov := s.ov
	state, cmds := s.sm.Tick(temps, ov, now)

	if err := s.applyActuators(ctx, cmds); err != nil {
		s.log.Errorw("actuator write failed, forcing standby", "err", err)
		state = s.sm.ForceStandby(now)
		// Best effort: relays off even if the first write just failed.
		_ = s.driver.SetActuator(ctx, s.actuators.Pump, false, cmds.Simulated)
		_ = s.driver.SetActuator(ctx, s.actuators.Heater, false, cmds.Simulated)
		s.publishAlert("actuators", err.Error())
	}

	if tankC, ok := representativeTank(temps); ok {
		s.ledger.Update(tankC, state.PumpOn, state.HeaterOn, now)
	}
	energy := s.ledger.Snapshot()
	s.mu.Unlock()

	for role, r := range temps {
		if r.Status != model.HealthHealthy {
			s.metrics.ObserveReadError(role)
		}
	}
	s.metrics.ObserveCycle(temps, state, energy)
	s.metrics.SetMQTTConnected(s.bus.Connected())
	s.telemetry.RecordCycle(temps, state, energy, now)

	if err := s.store.Save(energy); err != nil {
		s.log.Warnw("ledger snapshot write failed", "err", err)
	}

	snap := buildSnapshot(temps, s.health.Records(), state, energy, now)
	select {
	case s.snapshots <- snap:
	default:
		s.log.Debugw("publisher behind, dropping status snapshot")
	}
}

// applyActuators drives both relays, retrying each write once before
// giving up.
func (s *Service) applyActuators(ctx context.Context, cmds model.ActuatorCommands) error {
	set := func(relay model.RelayAddress, on bool) error {
		err := s.driver.SetActuator(ctx, relay, on, cmds.Simulated)
		if err != nil {
			err = s.driver.SetActuator(ctx, relay, on, cmds.Simulated)
		}
		return err
	}
	if err := set(s.actuators.Pump, cmds.PumpOn); err != nil {
		return fmt.Errorf("pump: %w", err)
	}
	if err := set(s.actuators.Heater, cmds.HeaterOn); err != nil {
		return fmt.Errorf("heater: %w", err)
	}
	return nil
}

// publishLoop forwards status snapshots and emits the periodic heartbeat.
// The heartbeat carries the latest known state so the watchdog can log
// context without subscribing to the full status stream.
func (s *Service) publishLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	var seq uint64
	var last messages.StatusSnapshot
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-s.snapshots:
			last = snap
			s.publishStatus(snap)
		case <-ticker.C:
			seq++
			hb := messages.Heartbeat{
				Status:      messages.HeartbeatAlive,
				Timestamp:   time.Now(),
				Seq:         seq,
				Mode:        last.Mode,
				PumpOn:      last.PumpOn,
				HeaterOn:    last.HeaterOn,
				SensorCount: len(last.Sensors),
			}
			if err := mqttbus.PublishJSON(s.bus, messages.TopicHeartbeat, 1, false, hb); err != nil {
				s.log.Warnw("heartbeat publish failed", "err", err)
			}
		}
	}
}

func (s *Service) publishStatus(snap messages.StatusSnapshot) {
	if err := mqttbus.PublishJSON(s.bus, messages.TopicState, 1, true, snap); err != nil {
		s.log.Warnw("status publish failed", "err", err)
	}
	for role, sensor := range snap.Sensors {
		msg := messages.SensorReadingMessage{
			Role:      role,
			ValueC:    sensor.ValueC,
			Status:    sensor.Status,
			Timestamp: sensor.At,
		}
		if err := mqttbus.PublishJSON(s.bus, messages.SensorTopic(string(role)), 0, false, msg); err != nil {
			s.log.Warnw("sensor publish failed", "role", role, "err", err)
		}
	}
}

func (s *Service) publishAlert(signal, msg string) {
	alert := messages.WatchdogAlert{
		AlertID:   uuid.NewString(),
		Severity:  messages.SeverityCritical,
		Signal:    signal,
		Status:    model.HealthFailed,
		Message:   msg,
		Timestamp: time.Now(),
	}
	if err := mqttbus.PublishJSON(s.bus, messages.TopicAlert, 1, false, alert); err != nil {
		s.log.Warnw("alert publish failed", "err", err)
	}
}

// onOverride applies an operator command. QoS1 redeliveries are dropped by
// command id; every accepted command is logged with its source.
func (s *Service) onOverride(_ mqtt.Client, msg mqtt.Message) {
	var cmd messages.OverrideCommand
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		s.log.Warnw("invalid override payload", "topic", msg.Topic(), "err", err)
		return
	}
	if !s.dedup.ShouldProcess(cmd.CommandID) {
		s.log.Debugw("duplicate override dropped", "command_id", cmd.CommandID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cmd.Device == messages.OverrideDeviceParams {
		if cmd.Params == nil {
			s.log.Warnw("params override without params", "command_id", cmd.CommandID)
			return
		}
		if err := s.sm.SetParams(*cmd.Params); err != nil {
			s.log.Warnw("params override rejected", "command_id", cmd.CommandID, "err", err)
			return
		}
		s.ledger.SetParams(*cmd.Params)
		return
	}
	before := s.ov
	if err := applyOverride(&s.ov, cmd); err != nil {
		s.log.Warnw("override rejected", "device", cmd.Device, "value", cmd.Value, "err", err)
		return
	}
	s.log.Infow("override applied",
		"command_id", cmd.CommandID, "device", cmd.Device, "value", cmd.Value,
		"source", cmd.Source, "manual_before", before.Manual, "manual_after", s.ov.Manual)
}

// applyOverride mutates ov according to one command. Pump and heater
// commands imply manual mode; "clear" on any device drops back to automatic
// control.
func applyOverride(ov *model.Overrides, cmd messages.OverrideCommand) error {
	switch cmd.Device {
	case messages.OverrideDevicePump, messages.OverrideDeviceHeater:
		switch cmd.Value {
		case messages.OverrideOn, messages.OverrideOff:
			ov.Manual = true
			on := cmd.Value == messages.OverrideOn
			if cmd.Device == messages.OverrideDevicePump {
				ov.Pump = on
			} else {
				ov.Heater = on
			}
		case messages.OverrideClear:
			ov.Manual = false
			ov.Pump = false
			ov.Heater = false
		default:
			return fmt.Errorf("unknown value %q", cmd.Value)
		}
	case messages.OverrideDeviceMode:
		switch cmd.Value {
		case messages.OverrideModeAuto, messages.OverrideClear:
			*ov = model.Overrides{BaseMode: model.ModeAuto}
		case messages.OverrideModeEco:
			*ov = model.Overrides{BaseMode: model.ModeEco}
		case messages.OverrideModeManual:
			ov.Manual = true
		case messages.OverrideModeTest:
			ov.Test = !ov.Test
		default:
			return fmt.Errorf("unknown mode %q", cmd.Value)
		}
	default:
		return fmt.Errorf("unknown device %q", cmd.Device)
	}
	return nil
}

// shutdown runs after the loops have stopped: relays off through the
// driver, one retained "stopping" heartbeat so the watchdog stands down,
// and a final ledger snapshot.
func (s *Service) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.driver.SetActuator(ctx, s.actuators.Pump, false, false); err != nil {
		s.log.Errorw("shutdown: pump off failed", "err", err)
	}
	if err := s.driver.SetActuator(ctx, s.actuators.Heater, false, false); err != nil {
		s.log.Errorw("shutdown: heater off failed", "err", err)
	}

	hb := messages.Heartbeat{Status: messages.HeartbeatStopping, Timestamp: time.Now()}
	if err := mqttbus.PublishJSON(s.bus, messages.TopicHeartbeat, 1, false, hb); err != nil {
		s.log.Warnw("shutdown: stopping heartbeat failed", "err", err)
	}

	s.mu.Lock()
	energy := s.ledger.Snapshot()
	s.mu.Unlock()
	if err := s.store.Save(energy); err != nil {
		s.log.Warnw("shutdown: ledger snapshot failed", "err", err)
	}
	s.log.Infow("controller stopped")
}

// representativeTank averages the usable tank probes for the energy
// calculation; with only one usable it uses that one.
func representativeTank(temps map[model.SensorRole]model.HealthReading) (float64, bool) {
	top, haveTop := usable(temps, model.RoleTankTop)
	bottom, haveBottom := usable(temps, model.RoleTankBottom)
	switch {
	case haveTop && haveBottom:
		return (top + bottom) / 2, true
	case haveTop:
		return top, true
	case haveBottom:
		return bottom, true
	}
	return 0, false
}

func buildSnapshot(temps map[model.SensorRole]model.HealthReading, records []model.SensorHealthRecord, state model.SystemState, energy messages.EnergyTotals, now time.Time) messages.StatusSnapshot {
	counters := make(map[model.SensorRole]model.SensorHealthRecord, len(records))
	for _, rec := range records {
		counters[rec.Role] = rec
	}
	sensors := make(map[model.SensorRole]messages.SensorStatus, len(temps))
	for role, r := range temps {
		rec := counters[role]
		sensors[role] = messages.SensorStatus{
			ValueC:            r.ValueC,
			Status:            r.Status,
			ConsecutiveErrors: rec.ConsecutiveErrors,
			TotalErrors:       rec.TotalErrors,
			At:                r.At,
		}
	}
	return messages.StatusSnapshot{
		Mode:      state.Mode,
		PumpOn:    state.PumpOn,
		HeaterOn:  state.HeaterOn,
		Sensors:   sensors,
		Energy:    energy,
		Timestamp: now,
	}
}
