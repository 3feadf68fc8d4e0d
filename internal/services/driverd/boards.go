package driverd

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// Boards is the seam in front of the vendor routines. The gRPC handler is
// written against this interface so the simulated implementation can stand
// in for real hardware in Test mode and on development machines.
type Boards interface {
	// ReadTemperature returns a calibrated reading in °C. It may block for
	// the duration of the bus transaction and returns an error on any
	// transport failure; it never substitutes a default value.
	ReadTemperature(ctx context.Context, kind model.BoardKind, board, channel int) (float64, error)
	// SetRelay energizes or releases one relay channel.
	SetRelay(ctx context.Context, board, channel int, on bool) error
}

// sequentBoards drives the Sequent Microsystems RTD and MegaBAS cards
// through the vendor command-line tools (the same routines the installation
// scripts call). Each invocation is one SMBus transaction.
type sequentBoards struct {
	rtdCmd     string
	megabasCmd string
}

// NewSequentBoards returns a Boards backed by the vendor CLI tools.
// Command names are configurable so tests and containers can point them at
// stubs.
func NewSequentBoards(rtdCmd, megabasCmd string) Boards {
	if rtdCmd == "" {
		rtdCmd = "rtd"
	}
	if megabasCmd == "" {
		megabasCmd = "megabas"
	}
	return &sequentBoards{rtdCmd: rtdCmd, megabasCmd: megabasCmd}
}

func (s *sequentBoards) ReadTemperature(ctx context.Context, kind model.BoardKind, board, channel int) (float64, error) {
	var cmd *exec.Cmd
	switch kind {
	case model.BoardRTD:
		cmd = exec.CommandContext(ctx, s.rtdCmd, strconv.Itoa(board), "read", strconv.Itoa(channel))
	case model.BoardMegaBAS:
		cmd = exec.CommandContext(ctx, s.megabasCmd, strconv.Itoa(board), "uinrd", strconv.Itoa(channel))
	default:
		return 0, fmt.Errorf("unknown board kind %q", kind)
	}
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("%s board %d channel %d: %w", kind, board, channel, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("%s board %d channel %d: bad reading %q: %w", kind, board, channel, string(out), err)
	}
	if kind == model.BoardMegaBAS {
		v = megabasVoltsToCelsius(v)
	}
	return v, nil
}

func (s *sequentBoards) SetRelay(ctx context.Context, board, channel int, on bool) error {
	state := "0"
	if on {
		state = "1"
	}
	cmd := exec.CommandContext(ctx, s.megabasCmd, strconv.Itoa(board), "trwr", strconv.Itoa(channel), state)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("relay board %d channel %d: %w (%s)", board, channel, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// megabasVoltsToCelsius maps the 0..10 V analog input to the transmitter's
// -40..+160 °C span.
func megabasVoltsToCelsius(v float64) float64 {
	return v*20 - 40
}
