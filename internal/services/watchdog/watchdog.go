// Package watchdog supervises the control process from outside it: a
// heartbeat monitor on the broker, a network reachability probe and an OS
// service check, with capped automatic restarts when the controller goes
// quiet.
package watchdog

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
	"github.com/DonHugo/sun-heat-and-ftx-sub001/pkg/mqttbus"
)

// Monitored signal names, used in alerts and logs.
const (
	SignalHeartbeat = "heartbeat"
	SignalNetwork   = "network"
	SignalService   = "service"
)

// Config shapes the supervision policy. FailTimeout is clamped to the
// 60..120s band so a typo cannot disable the watchdog or make it trigger
// on a single slow cycle.
type Config struct {
	HeartbeatInterval time.Duration  `mapstructure:"heartbeat_interval"`
	FailTimeout       time.Duration  `mapstructure:"fail_timeout"`
	CheckInterval     time.Duration  `mapstructure:"check_interval"`
	StoppingGrace     time.Duration  `mapstructure:"stopping_grace"`
	ServiceUnit       string         `mapstructure:"service_unit"`
	NetworkAddr       string         `mapstructure:"network_addr"`
	Recovery          RecoveryConfig `mapstructure:"recovery"`
}

func (c *Config) applyDefaults() {
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = 30 * time.Second
	}
	if c.FailTimeout <= 0 {
		c.FailTimeout = 90 * time.Second
	}
	if c.FailTimeout < 60*time.Second {
		c.FailTimeout = 60 * time.Second
	}
	if c.FailTimeout > 120*time.Second {
		c.FailTimeout = 120 * time.Second
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = 10 * time.Second
	}
	if c.StoppingGrace <= 0 {
		c.StoppingGrace = 5 * time.Minute
	}
	if c.ServiceUnit == "" {
		c.ServiceUnit = "sunheat-controller.service"
	}
}

// Service is the watchdog process. Each monitored signal runs its own
// healthy/degraded/failed state machine; the combined verdict is unhealthy
// as soon as any signal is failed.
type Service struct {
	cfg      Config
	log      *logger.Logger
	bus      *mqttbus.Bus
	mgr      ServiceManager
	netcheck NetChecker
	recovery *Recovery
	now      func() time.Time

	mu            sync.Mutex
	lastBeat      time.Time
	lastSeq       uint64
	stoppingUntil time.Time
	netFirstFail  time.Time
	statuses      map[string]model.HealthStatus
}

func New(cfg Config, bus *mqttbus.Bus, mgr ServiceManager, netcheck NetChecker, log *logger.Logger) *Service {
	cfg.applyDefaults()
	s := &Service{
		cfg:      cfg,
		log:      log,
		bus:      bus,
		mgr:      mgr,
		netcheck: netcheck,
		recovery: NewRecovery(cfg.Recovery, log),
		now:      time.Now,
		statuses: map[string]model.HealthStatus{
			SignalHeartbeat: model.HealthUnknown,
			SignalNetwork:   model.HealthUnknown,
			SignalService:   model.HealthUnknown,
		},
	}
	// The controller gets one full timeout to produce its first beat.
	s.lastBeat = s.now()
	return s
}

// Run subscribes to the heartbeat stream and evaluates all signals every
// check interval until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.bus.Subscribe(messages.TopicHeartbeat, 1, s.onHeartbeat); err != nil {
		return fmt.Errorf("subscribe heartbeat: %w", err)
	}
	s.log.Infow("watchdog started",
		"fail_timeout", s.cfg.FailTimeout, "service_unit", s.cfg.ServiceUnit)

	ticker := time.NewTicker(s.cfg.CheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Infow("watchdog stopped")
			return nil
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// onHeartbeat records a controller beat. A "stopping" beat arms the grace
// window during which silence is expected and recovery stands down.
func (s *Service) onHeartbeat(_ mqtt.Client, msg mqtt.Message) {
	var hb messages.Heartbeat
	if err := json.Unmarshal(msg.Payload(), &hb); err != nil {
		s.log.Warnw("invalid heartbeat payload", "err", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if hb.Status == messages.HeartbeatStopping {
		s.stoppingUntil = now.Add(s.cfg.StoppingGrace)
		s.log.Infow("controller announced shutdown, recovery standing down",
			"grace", s.cfg.StoppingGrace)
		return
	}
	if hb.Seq != 0 && hb.Seq < s.lastSeq {
		s.log.Infow("heartbeat sequence reset, controller restarted",
			"seq", hb.Seq, "previous", s.lastSeq)
	}
	s.lastSeq = hb.Seq
	s.lastBeat = now
	s.stoppingUntil = time.Time{}
}

// check evaluates every signal, publishes alerts on transitions to failed,
// and drives recovery when the combined verdict is unhealthy.
func (s *Service) check(ctx context.Context) {
	now := s.now()

	s.mu.Lock()
	inGrace := now.Before(s.stoppingUntil)
	beatAge := now.Sub(s.lastBeat)
	s.mu.Unlock()

	hbStatus := s.heartbeatStatus(beatAge, inGrace)
	netStatus := s.networkStatus(ctx, now)
	svcStatus := s.serviceStatus(ctx)

	s.setStatus(SignalHeartbeat, hbStatus, fmt.Sprintf("last beat %s ago", beatAge.Round(time.Second)))
	s.setStatus(SignalNetwork, netStatus, "network probe")
	s.setStatus(SignalService, svcStatus, fmt.Sprintf("unit %s", s.cfg.ServiceUnit))

	unhealthy := hbStatus == model.HealthFailed || svcStatus == model.HealthFailed
	if inGrace {
		return
	}
	if !unhealthy {
		s.recovery.NoteHealthy()
		return
	}
	// Network loss alone is not recoverable by a restart; only a dead or
	// silent controller is.
	s.recover(ctx)
}

func (s *Service) heartbeatStatus(age time.Duration, inGrace bool) model.HealthStatus {
	switch {
	case inGrace:
		return model.HealthHealthy
	case age > s.cfg.FailTimeout:
		return model.HealthFailed
	case age > 2*s.cfg.HeartbeatInterval:
		return model.HealthDegraded
	default:
		return model.HealthHealthy
	}
}

// networkStatus probes the configured address. One failed probe degrades;
// failing continuously for the full timeout fails the signal.
func (s *Service) networkStatus(ctx context.Context, now time.Time) model.HealthStatus {
	if s.cfg.NetworkAddr == "" {
		return model.HealthHealthy
	}
	if err := s.netcheck.Check(ctx, s.cfg.NetworkAddr); err != nil {
		s.mu.Lock()
		if s.netFirstFail.IsZero() {
			s.netFirstFail = now
		}
		firstFail := s.netFirstFail
		s.mu.Unlock()
		if now.Sub(firstFail) > s.cfg.FailTimeout {
			return model.HealthFailed
		}
		return model.HealthDegraded
	}
	s.mu.Lock()
	s.netFirstFail = time.Time{}
	s.mu.Unlock()
	return model.HealthHealthy
}

func (s *Service) serviceStatus(ctx context.Context) model.HealthStatus {
	if s.mgr == nil {
		return model.HealthHealthy
	}
	active, err := s.mgr.IsActive(ctx, s.cfg.ServiceUnit)
	if err != nil {
		s.log.Warnw("service check failed", "unit", s.cfg.ServiceUnit, "err", err)
		return model.HealthDegraded
	}
	if !active {
		return model.HealthFailed
	}
	return model.HealthHealthy
}

// setStatus records a signal transition, logging every change and alerting
// on entry to failed.
func (s *Service) setStatus(signal string, to model.HealthStatus, detail string) {
	s.mu.Lock()
	from := s.statuses[signal]
	if from == to {
		s.mu.Unlock()
		return
	}
	s.statuses[signal] = to
	s.mu.Unlock()

	s.log.Infow("signal transition", "signal", signal, "from", from, "to", to, "detail", detail)
	if to == model.HealthFailed {
		s.publishAlert(messages.SeverityWarning, signal, to, detail)
	}
}

// recover restarts the controller unit, subject to the sliding-window cap.
// Exhausting the cap escalates once with a critical alert and then waits
// for a human.
func (s *Service) recover(ctx context.Context) {
	if s.mgr == nil {
		return
	}
	now := s.now()
	switch {
	case s.recovery.Allow(now):
		s.log.Warnw("restarting controller", "unit", s.cfg.ServiceUnit, "attempts_in_window", s.recovery.AttemptsInWindow(now))
		if err := s.mgr.Restart(ctx, s.cfg.ServiceUnit); err != nil {
			s.log.Errorw("restart failed", "unit", s.cfg.ServiceUnit, "err", err)
			s.publishAlert(messages.SeverityCritical, SignalService, model.HealthFailed,
				fmt.Sprintf("restart of %s failed: %v", s.cfg.ServiceUnit, err))
			return
		}
		// Re-arm: the restarted controller gets a full timeout before the
		// heartbeat signal can fail again.
		s.mu.Lock()
		s.lastBeat = now
		s.mu.Unlock()
	case s.recovery.Escalate():
		s.publishAlert(messages.SeverityCritical, SignalHeartbeat, model.HealthFailed,
			fmt.Sprintf("recovery exhausted: %d restarts in %s, manual intervention required",
				s.recovery.cfg.MaxAttempts, s.recovery.cfg.Window))
	}
}

func (s *Service) publishAlert(severity, signal string, status model.HealthStatus, msg string) {
	alert := messages.WatchdogAlert{
		AlertID:   uuid.NewString(),
		Severity:  severity,
		Signal:    signal,
		Status:    status,
		Message:   msg,
		Timestamp: s.now(),
	}
	if err := mqttbus.PublishJSON(s.bus, messages.TopicAlert, 1, false, alert); err != nil {
		s.log.Errorw("alert publish failed", "signal", signal, "err", err)
	}
	s.log.Warnw("alert published", "severity", severity, "signal", signal, "message", msg)
}

// Statuses returns a copy of the per-signal verdicts for the health
// endpoint.
func (s *Service) Statuses() map[string]model.HealthStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.HealthStatus, len(s.statuses))
	for k, v := range s.statuses {
		out[k] = v
	}
	return out
}
