package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/services/watchdog"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/pkg/mqttbus"
)

func main() {
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level")).Named("watchdog")

	var mqttCfg mqttbus.Config
	if err := viper.UnmarshalKey("mqtt", &mqttCfg); err != nil {
		log.Fatalw("invalid mqtt config", "err", err)
	}
	if mqttCfg.ClientID == "" {
		mqttCfg.ClientID = "sunheat-watchdog"
	}

	var wdCfg watchdog.Config
	if err := viper.UnmarshalKey("watchdog", &wdCfg); err != nil {
		log.Fatalw("invalid watchdog config", "err", err)
	}
	if wdCfg.NetworkAddr == "" {
		// Default probe target: the broker itself.
		wdCfg.NetworkAddr = fmt.Sprintf("%s:%d", mqttCfg.Host, mqttCfg.Port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus, err := mqttbus.Connect(ctx, mqttCfg, log)
	if err != nil {
		log.Fatalw("mqtt connect failed", "err", err)
	}
	defer bus.Close()

	svc := watchdog.New(wdCfg, bus, watchdog.SystemdManager{}, watchdog.TCPChecker{}, log)

	httpAddr := fmt.Sprintf(":%d", viper.GetInt("watchdog.http_port"))
	hs := &http.Server{
		Addr:              httpAddr,
		Handler:           watchdog.NewHealthMux(svc),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Infow("http listening", "addr", httpAddr)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("http server error", "err", err)
		}
	}()

	if err := svc.Run(ctx); err != nil {
		log.Errorw("watchdog exited with error", "err", err)
	}

	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = hs.Shutdown(shCtx)
}

func loadConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetEnvPrefix("SUNHEAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("watchdog.http_port", 8081)
	return viper.ReadInConfig()
}
