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
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/services/controller"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/pkg/mqttbus"
)

func main() {
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level")).Named("controller")

	mqttCfg, driverCfg, healthCfg, loopCfg, influxCfg, err := unmarshalSections()
	if err != nil {
		log.Fatalw("invalid config", "err", err)
	}
	sensors, actuators, params, err := loadPlant()
	if err != nil {
		log.Fatalw("invalid plant config", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The bus outlives ctx so the shutdown sequence can still publish the
	// final "stopping" heartbeat after the signal arrives.
	bus, err := mqttbus.Connect(context.Background(), mqttCfg, log)
	if err != nil {
		log.Fatalw("mqtt connect failed", "err", err)
	}
	defer bus.Close()

	driver, err := controller.NewGrpcDriver(ctx, driverCfg)
	if err != nil {
		log.Fatalw("driverd dial failed", "err", err)
	}
	defer driver.Close()

	health := controller.NewHealthMonitor(driver, sensors, healthCfg, log.Named("health"))
	sm := controller.NewStateMachine(params, log.Named("control"))
	metrics := controller.NewMetrics()

	var telemetry *controller.Telemetry
	if influxCfg.Enabled() {
		telemetry = controller.NewTelemetry(influxCfg, log.Named("influx"))
		defer telemetry.Close()
	}

	svc := controller.New(loopCfg, bus, driver, health, sm, sensors, actuators, metrics, telemetry, log)

	httpAddr := fmt.Sprintf(":%d", viper.GetInt("http_port"))
	hs := &http.Server{
		Addr:              httpAddr,
		Handler:           controller.NewHealthMux(bus, telemetry, metrics),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Infow("http listening", "addr", httpAddr)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("http server error", "err", err)
		}
	}()

	if err := svc.Run(ctx); err != nil {
		log.Errorw("controller exited with error", "err", err)
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
	viper.SetDefault("http_port", 8080)
	viper.SetDefault("log.level", logger.InfoLevel)
	return viper.ReadInConfig()
}

func unmarshalSections() (mqttbus.Config, controller.DriverConfig, controller.HealthConfig, controller.Config, controller.InfluxConfig, error) {
	var (
		mqttCfg   mqttbus.Config
		driverCfg controller.DriverConfig
		healthCfg controller.HealthConfig
		loopCfg   controller.Config
		influxCfg controller.InfluxConfig
	)
	for key, out := range map[string]any{
		"mqtt":   &mqttCfg,
		"driver": &driverCfg,
		"health": &healthCfg,
		"loop":   &loopCfg,
		"influx": &influxCfg,
	} {
		if err := viper.UnmarshalKey(key, out); err != nil {
			return mqttCfg, driverCfg, healthCfg, loopCfg, influxCfg, fmt.Errorf("section %s: %w", key, err)
		}
	}
	if mqttCfg.ClientID == "" {
		mqttCfg.ClientID = "sunheat-controller"
	}
	return mqttCfg, driverCfg, healthCfg, loopCfg, influxCfg, nil
}

func loadPlant() (model.SensorMap, model.ActuatorMap, model.ControlParameters, error) {
	var sensors model.SensorMap
	if err := viper.UnmarshalKey("sensors", &sensors); err != nil {
		return nil, model.ActuatorMap{}, model.ControlParameters{}, fmt.Errorf("sensors: %w", err)
	}
	if err := sensors.Validate(); err != nil {
		return nil, model.ActuatorMap{}, model.ControlParameters{}, err
	}

	var actuators model.ActuatorMap
	if err := viper.UnmarshalKey("actuators", &actuators); err != nil {
		return nil, model.ActuatorMap{}, model.ControlParameters{}, fmt.Errorf("actuators: %w", err)
	}
	if err := actuators.Validate(); err != nil {
		return nil, model.ActuatorMap{}, model.ControlParameters{}, err
	}

	params := model.DefaultControlParameters()
	if err := viper.UnmarshalKey("control", &params); err != nil {
		return nil, model.ActuatorMap{}, model.ControlParameters{}, fmt.Errorf("control: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, model.ActuatorMap{}, model.ControlParameters{}, err
	}
	return sensors, actuators, params, nil
}
