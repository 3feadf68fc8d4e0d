package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model/messages"
)

// SnapshotStore persists the energy ledger across restarts as a small JSON
// file. Writes go through a temp file and rename so a crash mid-write
// leaves the previous snapshot intact.
type SnapshotStore struct {
	path string
	log  *logger.Logger
}

func NewSnapshotStore(path string, log *logger.Logger) *SnapshotStore {
	return &SnapshotStore{path: path, log: log}
}

// Load reads the persisted totals. A missing file is a clean first start
// and returns zero totals; a corrupt file is logged and likewise treated
// as a fresh start rather than wedging the controller.
func (s *SnapshotStore) Load() messages.EnergyTotals {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warnw("snapshot unreadable, starting fresh", "path", s.path, "err", err)
		}
		return messages.EnergyTotals{}
	}
	var snap messages.EnergyTotals
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Warnw("snapshot corrupt, starting fresh", "path", s.path, "err", err)
		return messages.EnergyTotals{}
	}
	s.log.Infow("energy snapshot restored",
		"path", s.path, "collected_today_kwh", snap.CollectedTodayKWh, "last_reset", snap.LastResetDate)
	return snap
}

// Save writes the totals atomically.
func (s *SnapshotStore) Save(snap messages.EnergyTotals) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
