package controller

import (
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model/messages"
)

// Energy accounting buckets.
const (
	SourceSolar  = "solar"
	SourceHeater = "heater"
)

const dateLayout = "2006-01-02"

// EnergyLedger integrates collected thermal energy from tank temperature
// deltas. Owned by the controller, mutated only inside the cycle critical
// section. Totals survive restarts through the snapshot store.
type EnergyLedger struct {
	params model.ControlParameters
	log    *logger.Logger

	sourcesToday    map[string]float64
	sourcesLifetime map[string]float64
	lastResetDate   string

	prevTankC float64
	havePrev  bool
}

func NewEnergyLedger(params model.ControlParameters, log *logger.Logger) *EnergyLedger {
	return &EnergyLedger{
		params:          params,
		log:             log,
		sourcesToday:    make(map[string]float64),
		sourcesLifetime: make(map[string]float64),
	}
}

// SetParams swaps the tank physics, part of the audited parameter override.
func (l *EnergyLedger) SetParams(p model.ControlParameters) {
	l.params = p
}

// Restore seeds the ledger from a persisted snapshot. The previous tank
// temperature is deliberately not restored: the first update after a
// restart only re-seeds the baseline, so a restart never fabricates a
// temperature delta.
func (l *EnergyLedger) Restore(snap messages.EnergyTotals) {
	for s, v := range snap.SourcesTodayKWh {
		l.sourcesToday[s] = v
	}
	for s, v := range snap.SourcesLifetimeKWh {
		l.sourcesLifetime[s] = v
	}
	l.lastResetDate = snap.LastResetDate
}

// Update integrates one cycle. The delta is attributed to exactly one
// bucket: the heater when it ran, otherwise the pump's solar circuit. With
// neither active the baseline just tracks the tank so standing losses are
// not booked as negative collection.
func (l *EnergyLedger) Update(tankC float64, pumpOn, heaterOn bool, now time.Time) {
	l.MaybeResetForNewDay(now)

	if !l.havePrev {
		l.prevTankC = tankC
		l.havePrev = true
		return
	}
	deltaC := tankC - l.prevTankC
	l.prevTankC = tankC

	if !pumpOn && !heaterOn {
		return
	}
	source := SourceSolar
	if heaterOn {
		source = SourceHeater
	}

	p := l.params
	deltaKWh := p.TankMassKg * p.SpecificHeatKJKgC * deltaC / 3600

	today := l.sourcesToday[source] + deltaKWh
	lifetime := l.sourcesLifetime[source] + deltaKWh
	if capKWh := l.capacityKWh(); today < 0 || today > capKWh || lifetime < 0 {
		l.log.Errorw("energy total outside physical bounds, discarding delta",
			"source", source, "delta_kwh", deltaKWh, "total_kwh", today, "capacity_kwh", capKWh)
		return
	}
	l.sourcesToday[source] = today
	l.sourcesLifetime[source] = lifetime
}

// MaybeResetForNewDay zeroes the daily buckets when the calendar date has
// changed since the last reset. Comparing dates rather than elapsed time
// makes the reset idempotent across restarts: a restart at 00:00:03 still
// resets exactly once and one at 23:59:58 does not reset twice.
func (l *EnergyLedger) MaybeResetForNewDay(now time.Time) bool {
	date := now.Format(dateLayout)
	if l.lastResetDate == date {
		return false
	}
	if l.lastResetDate != "" {
		l.log.Infow("daily energy reset",
			"date", date, "collected_yesterday_kwh", l.collectedToday())
	}
	l.sourcesToday = make(map[string]float64)
	l.lastResetDate = date
	return true
}

// Snapshot returns a copy for publishing and persistence. CollectedToday
// is recomputed as the sum over sources, never tracked separately.
func (l *EnergyLedger) Snapshot() messages.EnergyTotals {
	today := make(map[string]float64, len(l.sourcesToday))
	for s, v := range l.sourcesToday {
		today[s] = v
	}
	lifetime := make(map[string]float64, len(l.sourcesLifetime))
	for s, v := range l.sourcesLifetime {
		lifetime[s] = v
	}
	return messages.EnergyTotals{
		SourcesTodayKWh:    today,
		SourcesLifetimeKWh: lifetime,
		CollectedTodayKWh:  l.collectedToday(),
		LastResetDate:      l.lastResetDate,
	}
}

func (l *EnergyLedger) collectedToday() float64 {
	var sum float64
	for _, v := range l.sourcesToday {
		sum += v
	}
	return sum
}

// capacityKWh is the physical ceiling for any single-day bucket: the energy
// needed to heat the whole tank from baseline to the maximum safe
// temperature.
func (l *EnergyLedger) capacityKWh() float64 {
	p := l.params
	return p.TankMassKg * p.SpecificHeatKJKgC * (p.MaxSafeTankC - p.BaselineTankC) / 3600
}
