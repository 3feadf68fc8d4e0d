package driverd

import (
	"context"
	"testing"
	"time"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

func TestSimulatedBoards_CollectorFollowsTheSun(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	sim := NewSimulatedBoards(0, 1).WithClock(func() time.Time { return clock })

	noonC, err := sim.ReadTemperature(context.Background(), model.BoardRTD, 0, 1)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if noonC < 80 {
		t.Fatalf("collector at solar noon = %v, want stagnation heat", noonC)
	}

	clock = time.Date(2026, 6, 15, 23, 0, 0, 0, time.UTC)
	nightC, err := sim.ReadTemperature(context.Background(), model.BoardRTD, 0, 1)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if nightC != 15 {
		t.Fatalf("collector at night = %v, want ambient 15", nightC)
	}
}

func TestSimulatedBoards_PumpWarmsTank(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	sim := NewSimulatedBoards(0, 1).WithClock(func() time.Time { return clock })

	before, err := sim.ReadTemperature(context.Background(), model.BoardRTD, 0, 3)
	if err != nil {
		t.Fatalf("read tank: %v", err)
	}

	if err := sim.SetRelay(context.Background(), 0, 1, true); err != nil {
		t.Fatalf("set relay: %v", err)
	}
	if !sim.Relay(0, 1) {
		t.Fatalf("relay state not recorded")
	}

	clock = clock.Add(time.Hour)
	after, err := sim.ReadTemperature(context.Background(), model.BoardRTD, 0, 3)
	if err != nil {
		t.Fatalf("read tank: %v", err)
	}
	if after <= before {
		t.Fatalf("tank must warm while the pump runs: before=%v after=%v", before, after)
	}
}

func TestSimulatedBoards_RejectsBadAddress(t *testing.T) {
	t.Parallel()
	sim := NewSimulatedBoards(0, 1)

	if _, err := sim.ReadTemperature(context.Background(), model.BoardRTD, 9, 1); err == nil {
		t.Fatalf("board 9 must be rejected")
	}
	if _, err := sim.ReadTemperature(context.Background(), "unknown", 0, 1); err == nil {
		t.Fatalf("unknown board kind must be rejected")
	}
	if err := sim.SetRelay(context.Background(), 0, 9, true); err == nil {
		t.Fatalf("relay channel 9 must be rejected")
	}
}

func TestMegabasVoltsToCelsius(t *testing.T) {
	t.Parallel()
	cases := []struct {
		volts float64
		want  float64
	}{
		{0, -40},
		{2, 0},
		{5, 60},
		{10, 160},
	}
	for _, tc := range cases {
		if got := megabasVoltsToCelsius(tc.volts); got != tc.want {
			t.Errorf("megabasVoltsToCelsius(%v) = %v, want %v", tc.volts, got, tc.want)
		}
	}
}
