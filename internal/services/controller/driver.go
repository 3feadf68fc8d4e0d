package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/DonHugo/sun-heat-and-ftx-sub001/grpc/gen/go/hardware"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// DriverAdapter is the controller's view of the hardware daemon. Reads and
// writes are blocking; both may fail on transport errors.
type DriverAdapter interface {
	ReadSensor(ctx context.Context, addr model.SensorAddress) (float64, error)
	SetActuator(ctx context.Context, relay model.RelayAddress, on, simulated bool) error
	Close()
}

// grpcDriver talks to driverd. A circuit breaker keeps a wedged daemon from
// stalling every control cycle at full timeout: once open, calls fail fast
// and the health monitor degrades sensors on last-known-good instead.
type grpcDriver struct {
	conn    *grpc.ClientConn
	cli     pb.HardwareServiceClient
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

// DriverConfig locates driverd and shapes the call policy.
type DriverConfig struct {
	Addr           string        `mapstructure:"addr"`
	CallTimeout    time.Duration `mapstructure:"call_timeout"`
	BreakerFails   uint32        `mapstructure:"breaker_fails"`
	BreakerOpenFor time.Duration `mapstructure:"breaker_open_for"`
}

// NewGrpcDriver dials driverd. The dial itself is verified so a
// misconfigured address fails at startup, not on the first cycle.
func NewGrpcDriver(ctx context.Context, cfg DriverConfig) (DriverAdapter, error) {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 2 * time.Second
	}
	if cfg.BreakerFails == 0 {
		cfg.BreakerFails = 5
	}
	if cfg.BreakerOpenFor <= 0 {
		cfg.BreakerOpenFor = 10 * time.Second
	}

	dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(
		dctx,
		cfg.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithReturnConnectionError(),
	)
	if err != nil {
		return nil, fmt.Errorf("dial driverd %s: %w", cfg.Addr, err)
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "driverd",
		Timeout: cfg.BreakerOpenFor,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= cfg.BreakerFails
		},
	})

	return &grpcDriver{
		conn:    conn,
		cli:     pb.NewHardwareServiceClient(conn),
		breaker: cb,
		timeout: cfg.CallTimeout,
	}, nil
}

func (d *grpcDriver) ReadSensor(ctx context.Context, addr model.SensorAddress) (float64, error) {
	res, err := d.breaker.Execute(func() (any, error) {
		cctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()
		return d.cli.ReadSensor(cctx, &pb.ReadSensorRequest{
			Kind:    string(addr.Kind),
			Board:   int32(addr.Board),
			Channel: int32(addr.Channel),
		})
	})
	if err != nil {
		return 0, fmt.Errorf("read %s board %d channel %d: %w", addr.Kind, addr.Board, addr.Channel, err)
	}
	return res.(*pb.ReadSensorResponse).GetValueC(), nil
}

func (d *grpcDriver) SetActuator(ctx context.Context, relay model.RelayAddress, on, simulated bool) error {
	res, err := d.breaker.Execute(func() (any, error) {
		cctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()
		return d.cli.SetActuator(cctx, &pb.SetActuatorRequest{
			Board:     int32(relay.Board),
			Channel:   int32(relay.Channel),
			On:        on,
			Simulated: simulated,
		})
	})
	if err != nil {
		return fmt.Errorf("set relay board %d channel %d: %w", relay.Board, relay.Channel, err)
	}
	if resp := res.(*pb.SetActuatorResponse); !resp.GetOk() {
		return fmt.Errorf("set relay board %d channel %d: %s", relay.Board, relay.Channel, resp.GetMessage())
	}
	return nil
}

func (d *grpcDriver) Close() {
	if d.conn != nil {
		_ = d.conn.Close()
	}
}

// BreakerState exposes the breaker for the health endpoint.
func (d *grpcDriver) BreakerState() gobreaker.State {
	return d.breaker.State()
}
