package controller

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model/messages"
)

func newTestLedger(t *testing.T) *EnergyLedger {
	t.Helper()
	return NewEnergyLedger(model.DefaultControlParameters(), logger.Get(logger.ErrorLevel))
}

func kwhForDelta(deltaC float64) float64 {
	return 750 * 4.186 * deltaC / 3600
}

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUpdate_SolarAttribution(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	day := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	l.Update(40, true, false, day) // seeds the baseline, books nothing
	l.Update(41, true, false, day.Add(time.Minute))

	snap := l.Snapshot()
	approx(t, snap.SourcesTodayKWh[SourceSolar], kwhForDelta(1))
	if _, ok := snap.SourcesTodayKWh[SourceHeater]; ok {
		t.Fatalf("heater bucket must be untouched: %+v", snap.SourcesTodayKWh)
	}
	approx(t, snap.CollectedTodayKWh, kwhForDelta(1))
}

func TestUpdate_HeaterTakesPriorityWhenBothActive(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	day := time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC)

	l.Update(40, true, true, day)
	l.Update(42, true, true, day.Add(time.Minute))

	snap := l.Snapshot()
	approx(t, snap.SourcesTodayKWh[SourceHeater], kwhForDelta(2))
	if snap.SourcesTodayKWh[SourceSolar] != 0 {
		t.Fatalf("delta booked twice: %+v", snap.SourcesTodayKWh)
	}
	// Collected-today is the sum of the buckets, never a separate counter.
	approx(t, snap.CollectedTodayKWh, snap.SourcesTodayKWh[SourceHeater])
}

func TestUpdate_NothingActiveOnlyMovesBaseline(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	day := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	l.Update(40, true, false, day)
	l.Update(39, false, false, day.Add(time.Minute)) // standing loss, idle
	l.Update(40, true, false, day.Add(2*time.Minute))

	// The idle interval moved the baseline to 39, so the active interval
	// books the 39 -> 40 rise only; the overnight-style loss is not
	// subtracted from the solar bucket.
	snap := l.Snapshot()
	approx(t, snap.SourcesTodayKWh[SourceSolar], kwhForDelta(1))
}

func TestUpdate_BoundsCheckDiscardsImpossibleDelta(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	day := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	l.Update(10, true, false, day)
	// A 200 degree jump exceeds the tank's physical capacity.
	l.Update(210, true, false, day.Add(time.Minute))

	snap := l.Snapshot()
	if snap.SourcesTodayKWh[SourceSolar] != 0 {
		t.Fatalf("impossible delta must be discarded, got %+v", snap.SourcesTodayKWh)
	}
}

func TestUpdate_NegativeTotalDiscardedNotClamped(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	day := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	l.Update(40, true, false, day)
	// Pump running but the tank fell; booking this would drive the daily
	// total negative, so the delta is dropped, not stored as zero.
	l.Update(39, true, false, day.Add(time.Minute))

	snap := l.Snapshot()
	if v := snap.SourcesTodayKWh[SourceSolar]; v != 0 {
		t.Fatalf("negative total must not be stored, got %v", v)
	}
	if v := snap.SourcesLifetimeKWh[SourceSolar]; v != 0 {
		t.Fatalf("lifetime must be untouched by a discarded delta, got %v", v)
	}

	// The baseline still advanced to 39, so the next rise books only the
	// 39 -> 41 interval.
	l.Update(41, true, false, day.Add(2*time.Minute))
	approx(t, l.Snapshot().SourcesTodayKWh[SourceSolar], kwhForDelta(2))
}

func TestMidnightReset_ByCalendarDate(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	day1 := time.Date(2026, 6, 15, 23, 58, 0, 0, time.UTC)

	l.Update(40, true, false, day1)
	l.Update(42, true, false, day1.Add(time.Minute))

	day2 := day1.Add(3 * time.Minute) // 00:01 next day
	if !l.MaybeResetForNewDay(day2) {
		t.Fatalf("date change must reset")
	}
	if l.MaybeResetForNewDay(day2.Add(time.Second)) {
		t.Fatalf("reset must be idempotent within the same date")
	}

	snap := l.Snapshot()
	if snap.CollectedTodayKWh != 0 {
		t.Fatalf("daily totals must be zero after reset, got %v", snap.CollectedTodayKWh)
	}
	approx(t, snap.SourcesLifetimeKWh[SourceSolar], kwhForDelta(2))
	if snap.LastResetDate != "2026-06-16" {
		t.Fatalf("last reset date = %q, want 2026-06-16", snap.LastResetDate)
	}
}

func TestRestore_DoesNotFabricateDelta(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	day := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	l.Restore(messages.EnergyTotals{
		SourcesTodayKWh:    map[string]float64{SourceSolar: 1.5},
		SourcesLifetimeKWh: map[string]float64{SourceSolar: 20},
		LastResetDate:      "2026-06-15",
	})

	// First update after a restart only re-seeds the baseline, no matter
	// how far the tank moved while the process was down.
	l.Update(55, true, false, day)
	snap := l.Snapshot()
	approx(t, snap.SourcesTodayKWh[SourceSolar], 1.5)
	approx(t, snap.SourcesLifetimeKWh[SourceSolar], 20)
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ledger.json")
	store := NewSnapshotStore(path, logger.Get(logger.ErrorLevel))

	in := messages.EnergyTotals{
		SourcesTodayKWh:    map[string]float64{SourceSolar: 3.25, SourceHeater: 1.0},
		SourcesLifetimeKWh: map[string]float64{SourceSolar: 410.5, SourceHeater: 88},
		CollectedTodayKWh:  4.25,
		LastResetDate:      "2026-06-15",
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out := store.Load()
	approx(t, out.SourcesTodayKWh[SourceSolar], 3.25)
	approx(t, out.SourcesLifetimeKWh[SourceHeater], 88)
	if out.LastResetDate != in.LastResetDate {
		t.Fatalf("last reset date = %q, want %q", out.LastResetDate, in.LastResetDate)
	}
}

func TestSnapshotStore_MissingAndCorruptFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	log := logger.Get(logger.ErrorLevel)

	missing := NewSnapshotStore(filepath.Join(dir, "nope.json"), log)
	if snap := missing.Load(); snap.CollectedTodayKWh != 0 || snap.LastResetDate != "" {
		t.Fatalf("missing file must load as zero totals, got %+v", snap)
	}

	corruptPath := filepath.Join(dir, "bad.json")
	if err := writeFile(t, corruptPath, "{not json"); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	corrupt := NewSnapshotStore(corruptPath, log)
	if snap := corrupt.Load(); snap.CollectedTodayKWh != 0 {
		t.Fatalf("corrupt file must load as zero totals, got %+v", snap)
	}
}

func writeFile(t *testing.T, path, content string) error {
	t.Helper()
	return os.WriteFile(path, []byte(content), 0o644)
}
