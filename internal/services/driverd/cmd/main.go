package main

import (
	"context"
	"net"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/viper"
	"google.golang.org/grpc"

	pb "github.com/DonHugo/sun-heat-and-ftx-sub001/grpc/gen/go/hardware"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/services/driverd"
)

func main() {
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level")).Named("driverd")

	var pump model.RelayAddress
	if err := viper.UnmarshalKey("actuators.pump", &pump); err != nil {
		log.Fatalw("invalid pump relay config", "err", err)
	}
	sim := driverd.NewSimulatedBoards(pump.Board, pump.Channel)

	var real driverd.Boards
	if viper.GetBool("driverd.simulate") {
		log.Infow("running against the simulated plant, hardware disabled")
		real = sim
	} else {
		real = driverd.NewSequentBoards(
			viper.GetString("driverd.rtd_cmd"),
			viper.GetString("driverd.megabas_cmd"))
	}

	addr := viper.GetString("driverd.listen")
	if addr == "" {
		addr = ":50051"
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalw("listen failed", "addr", addr, "err", err)
	}

	srv := grpc.NewServer()
	pb.RegisterHardwareServiceServer(srv, driverd.NewGrpcHandler(real, sim, log))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Infow("shutting down")
		srv.GracefulStop()
	}()

	log.Infow("hardware daemon listening", "addr", addr)
	if err := srv.Serve(lis); err != nil {
		log.Fatalw("grpc serve error", "err", err)
	}
}

func loadConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetEnvPrefix("SUNHEAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("log.level", logger.InfoLevel)
	return viper.ReadInConfig()
}
