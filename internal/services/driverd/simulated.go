package driverd

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// Thermal model tunables for the simulated plant.
const (
	simAmbientC        = 15.0
	simTankStartC      = 35.0
	simPeakCollectorC  = 110.0 // stagnation peak at solar noon with the pump off
	simPumpPulldownC   = 35.0  // how much a running pump depresses the collector
	simTankGainCPerMin = 0.15  // tank warming rate while the pump runs
	simTankLossCPerMin = 0.01  // standing losses
)

// SimulatedBoards is an in-memory plant: a collector that follows a daily
// irradiance curve and a tank that warms while the circulation pump runs.
// It backs Test mode and development without hardware.
type SimulatedBoards struct {
	mu      sync.Mutex
	now     func() time.Time
	last    time.Time
	tankC   float64
	relays  map[relayKey]bool
	pumpKey relayKey
}

type relayKey struct {
	board   int
	channel int
}

// NewSimulatedBoards builds a simulated plant. pumpBoard/pumpChannel name
// the relay whose state feeds back into the thermal model.
func NewSimulatedBoards(pumpBoard, pumpChannel int) *SimulatedBoards {
	return &SimulatedBoards{
		now:     time.Now,
		tankC:   simTankStartC,
		relays:  make(map[relayKey]bool),
		pumpKey: relayKey{board: pumpBoard, channel: pumpChannel},
	}
}

// WithClock replaces the time source, letting tests drive the model.
func (s *SimulatedBoards) WithClock(now func() time.Time) *SimulatedBoards {
	s.now = now
	return s
}

func (s *SimulatedBoards) ReadTemperature(_ context.Context, kind model.BoardKind, board, channel int) (float64, error) {
	if err := (model.SensorAddress{Kind: kind, Board: board, Channel: channel}).Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance()

	// Channel semantics mirror the reference wiring: 1 collector,
	// 2 tank top, 3 tank bottom, 4 return line.
	switch channel {
	case 1:
		return s.collectorC(), nil
	case 2:
		return s.tankC + 3, nil
	case 3:
		return s.tankC, nil
	default:
		return (s.collectorC() + s.tankC) / 2, nil
	}
}

func (s *SimulatedBoards) SetRelay(_ context.Context, board, channel int, on bool) error {
	if channel < 1 || channel > 8 {
		return fmt.Errorf("relay channel %d out of range 1..8", channel)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance()
	s.relays[relayKey{board: board, channel: channel}] = on
	return nil
}

// Relay reports the last commanded state, for tests and the daemon's
// shutdown safety check.
func (s *SimulatedBoards) Relay(board, channel int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.relays[relayKey{board: board, channel: channel}]
}

// advance integrates the tank state since the previous interaction.
// Callers hold s.mu.
func (s *SimulatedBoards) advance() {
	now := s.now()
	if s.last.IsZero() {
		s.last = now
		return
	}
	elapsedMin := now.Sub(s.last).Minutes()
	if elapsedMin <= 0 {
		return
	}
	s.last = now

	if s.relays[s.pumpKey] && s.collectorC() > s.tankC {
		s.tankC += simTankGainCPerMin * elapsedMin
	} else if s.tankC > simAmbientC {
		s.tankC = math.Max(s.tankC-simTankLossCPerMin*elapsedMin, simAmbientC)
	}
}

// collectorC follows a half-sine irradiance curve between 06:00 and 20:00
// local time, pulled down while the pump moves water through the panel.
func (s *SimulatedBoards) collectorC() float64 {
	h := float64(s.now().Hour()) + float64(s.now().Minute())/60
	if h < 6 || h > 20 {
		return simAmbientC
	}
	sun := math.Sin((h - 6) / 14 * math.Pi)
	c := simAmbientC + (simPeakCollectorC-simAmbientC)*sun
	if s.relays[s.pumpKey] {
		// A running pump drags the panel toward tank temperature.
		c = math.Max(c-simPumpPulldownC, s.tankC)
	}
	return c
}
