package driverd

import (
	"context"

	pb "github.com/DonHugo/sun-heat-and-ftx-sub001/grpc/gen/go/hardware"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// GrpcHandler implements HardwareService. Requests flagged simulated are
// routed to the simulated boards and never touch the real relays.
type GrpcHandler struct {
	pb.UnimplementedHardwareServiceServer

	real Boards
	sim  Boards
	log  *logger.Logger
}

func NewGrpcHandler(real, sim Boards, log *logger.Logger) *GrpcHandler {
	return &GrpcHandler{real: real, sim: sim, log: log}
}

func (h *GrpcHandler) ReadSensor(ctx context.Context, req *pb.ReadSensorRequest) (*pb.ReadSensorResponse, error) {
	addr := model.SensorAddress{
		Kind:    model.BoardKind(req.GetKind()),
		Board:   int(req.GetBoard()),
		Channel: int(req.GetChannel()),
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	v, err := h.real.ReadTemperature(ctx, addr.Kind, addr.Board, addr.Channel)
	if err != nil {
		h.log.Warnw("sensor read failed", "kind", addr.Kind, "board", addr.Board, "channel", addr.Channel, "err", err)
		return nil, err
	}
	return &pb.ReadSensorResponse{ValueC: v}, nil
}

func (h *GrpcHandler) SetActuator(ctx context.Context, req *pb.SetActuatorRequest) (*pb.SetActuatorResponse, error) {
	boards := h.real
	if req.GetSimulated() {
		boards = h.sim
	}
	err := boards.SetRelay(ctx, int(req.GetBoard()), int(req.GetChannel()), req.GetOn())
	if err != nil {
		h.log.Errorw("relay write failed",
			"board", req.GetBoard(), "channel", req.GetChannel(), "on", req.GetOn(), "simulated", req.GetSimulated(), "err", err)
		return &pb.SetActuatorResponse{Ok: false, Message: err.Error()}, nil
	}
	h.log.Infow("relay set",
		"board", req.GetBoard(), "channel", req.GetChannel(), "on", req.GetOn(), "simulated", req.GetSimulated())
	return &pb.SetActuatorResponse{Ok: true}, nil
}
