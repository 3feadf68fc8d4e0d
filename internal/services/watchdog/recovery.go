package watchdog

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
)

// ServiceManager abstracts the init system so tests can supervise a fake.
type ServiceManager interface {
	IsActive(ctx context.Context, unit string) (bool, error)
	Restart(ctx context.Context, unit string) error
}

// SystemdManager shells out to systemctl.
type SystemdManager struct{}

func (SystemdManager) IsActive(ctx context.Context, unit string) (bool, error) {
	out, err := exec.CommandContext(ctx, "systemctl", "is-active", unit).Output()
	state := strings.TrimSpace(string(out))
	if state == "active" {
		return true, nil
	}
	// is-active exits nonzero for every inactive state; only report an
	// error when it produced no verdict at all.
	if state == "" && err != nil {
		return false, fmt.Errorf("systemctl is-active %s: %w", unit, err)
	}
	return false, nil
}

func (SystemdManager) Restart(ctx context.Context, unit string) error {
	if out, err := exec.CommandContext(ctx, "systemctl", "restart", unit).CombinedOutput(); err != nil {
		return fmt.Errorf("systemctl restart %s: %w (%s)", unit, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// RecoveryConfig caps automatic restarts to MaxAttempts per sliding Window.
type RecoveryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	Window      time.Duration `mapstructure:"window"`
}

// Recovery tracks restart attempts in a sliding window. Once the cap is
// hit it escalates exactly once and stays quiet until the supervised
// process is seen healthy again.
type Recovery struct {
	cfg RecoveryConfig
	log *logger.Logger

	mu        sync.Mutex
	attempts  []time.Time
	escalated bool
}

func NewRecovery(cfg RecoveryConfig, log *logger.Logger) *Recovery {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Window <= 0 {
		cfg.Window = 30 * time.Minute
	}
	return &Recovery{cfg: cfg, log: log}
}

// Allow reports whether another restart fits in the window and records it.
func (r *Recovery) Allow(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(now)
	if len(r.attempts) >= r.cfg.MaxAttempts {
		return false
	}
	r.attempts = append(r.attempts, now)
	return true
}

// Escalate reports true exactly once per exhaustion.
func (r *Recovery) Escalate() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.escalated {
		return false
	}
	r.escalated = true
	return true
}

// NoteHealthy re-arms after the supervised process recovers: the attempt
// history and the escalation latch are cleared.
func (r *Recovery) NoteHealthy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.attempts) > 0 || r.escalated {
		r.log.Infow("supervised process healthy, recovery re-armed",
			"cleared_attempts", len(r.attempts))
	}
	r.attempts = nil
	r.escalated = false
}

// AttemptsInWindow counts restarts inside the current window.
func (r *Recovery) AttemptsInWindow(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(now)
	return len(r.attempts)
}

func (r *Recovery) prune(now time.Time) {
	cutoff := now.Add(-r.cfg.Window)
	kept := r.attempts[:0]
	for _, t := range r.attempts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	r.attempts = kept
}
