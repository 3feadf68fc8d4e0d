package watchdog

import (
	"testing"
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := Config{
		HeartbeatInterval: 30 * time.Second,
		FailTimeout:       90 * time.Second,
	}
	return New(cfg, nil, nil, TCPChecker{}, logger.Get(logger.ErrorLevel))
}

func TestHeartbeatStatus(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	cases := []struct {
		name    string
		age     time.Duration
		inGrace bool
		want    model.HealthStatus
	}{
		{"fresh beat", 10 * time.Second, false, model.HealthHealthy},
		{"one interval late still healthy", 50 * time.Second, false, model.HealthHealthy},
		{"missed beats degrade", 65 * time.Second, false, model.HealthDegraded},
		{"80s still only degraded", 80 * time.Second, false, model.HealthDegraded},
		{"past timeout fails", 95 * time.Second, false, model.HealthFailed},
		{"silence during stopping grace is fine", 95 * time.Second, true, model.HealthHealthy},
	}
	for _, tc := range cases {
		if got := s.heartbeatStatus(tc.age, tc.inGrace); got != tc.want {
			t.Errorf("%s: heartbeatStatus(%v) = %s, want %s", tc.name, tc.age, got, tc.want)
		}
	}
}

func TestConfig_DefaultHeartbeatInterval(t *testing.T) {
	t.Parallel()

	cfg := Config{}
	cfg.applyDefaults()
	if cfg.HeartbeatInterval != 30*time.Second {
		t.Fatalf("HeartbeatInterval default = %v, want 30s", cfg.HeartbeatInterval)
	}
}

func TestConfig_ClampsFailTimeout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, 90 * time.Second},
		{30 * time.Second, 60 * time.Second},
		{75 * time.Second, 75 * time.Second},
		{5 * time.Minute, 120 * time.Second},
	}
	for _, tc := range cases {
		cfg := Config{FailTimeout: tc.in}
		cfg.applyDefaults()
		if cfg.FailTimeout != tc.want {
			t.Errorf("FailTimeout %v clamped to %v, want %v", tc.in, cfg.FailTimeout, tc.want)
		}
	}
}

func TestRecovery_SlidingWindowCap(t *testing.T) {
	t.Parallel()
	r := NewRecovery(RecoveryConfig{MaxAttempts: 3, Window: 30 * time.Minute}, logger.Get(logger.ErrorLevel))

	start := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if !r.Allow(start.Add(time.Duration(i) * time.Minute)) {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if r.Allow(start.Add(5 * time.Minute)) {
		t.Fatalf("fourth attempt inside the window must be denied")
	}

	// The window slides: the oldest attempt ages out.
	if !r.Allow(start.Add(31 * time.Minute)) {
		t.Fatalf("attempt after the oldest aged out should be allowed")
	}
}

func TestRecovery_EscalatesOnce(t *testing.T) {
	t.Parallel()
	r := NewRecovery(RecoveryConfig{MaxAttempts: 1, Window: time.Hour}, logger.Get(logger.ErrorLevel))

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	if !r.Allow(now) {
		t.Fatalf("first attempt should be allowed")
	}
	if r.Allow(now.Add(time.Minute)) {
		t.Fatalf("cap of one must deny the second attempt")
	}
	if !r.Escalate() {
		t.Fatalf("first exhaustion must escalate")
	}
	if r.Escalate() {
		t.Fatalf("escalation must fire exactly once")
	}
}

func TestRecovery_ReArmsAfterHealthy(t *testing.T) {
	t.Parallel()
	r := NewRecovery(RecoveryConfig{MaxAttempts: 1, Window: time.Hour}, logger.Get(logger.ErrorLevel))

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	r.Allow(now)
	r.Escalate()

	r.NoteHealthy()

	if !r.Allow(now.Add(time.Minute)) {
		t.Fatalf("recovery must re-arm after the process is healthy again")
	}
	if !r.Escalate() {
		t.Fatalf("escalation latch must also re-arm")
	}
}
