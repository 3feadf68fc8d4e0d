package controller

import (
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model/messages"
)

// InfluxConfig locates the telemetry bucket. An empty URL disables the
// sink entirely.
type InfluxConfig struct {
	URL    string `mapstructure:"url"`
	Token  string `mapstructure:"token"`
	Org    string `mapstructure:"org"`
	Bucket string `mapstructure:"bucket"`
}

func (c InfluxConfig) Enabled() bool { return c.URL != "" }

// Telemetry writes each cycle's readings and state to InfluxDB through the
// non-blocking write API, tracking the last async write error so the
// health endpoint can report sink trouble without a cycle ever waiting on
// the database.
type Telemetry struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	log      *logger.Logger

	mu      sync.RWMutex
	lastErr time.Time
}

func NewTelemetry(cfg InfluxConfig, log *logger.Logger) *Telemetry {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	t := &Telemetry{
		client:   client,
		writeAPI: client.WriteAPI(cfg.Org, cfg.Bucket),
		log:      log,
		lastErr:  time.Now().Add(-24 * time.Hour),
	}
	go func() {
		for err := range t.writeAPI.Errors() {
			if err != nil {
				t.mu.Lock()
				t.lastErr = time.Now()
				t.mu.Unlock()
				t.log.Warnw("influx write error", "err", err)
			}
		}
	}()
	return t
}

// RecordCycle queues one cycle's worth of points. Fire and forget; errors
// surface through the error channel above.
func (t *Telemetry) RecordCycle(temps map[model.SensorRole]model.HealthReading, state model.SystemState, energy messages.EnergyTotals, now time.Time) {
	if t == nil {
		return
	}
	for role, r := range temps {
		if !r.Valid {
			continue
		}
		t.writeAPI.WritePoint(influxdb2.NewPoint("temperature",
			map[string]string{"role": string(role), "status": string(r.Status)},
			map[string]interface{}{"celsius": r.ValueC},
			now))
	}
	t.writeAPI.WritePoint(influxdb2.NewPoint("system_state",
		map[string]string{"mode": string(state.Mode)},
		map[string]interface{}{
			"pump_on":   state.PumpOn,
			"heater_on": state.HeaterOn,
		},
		now))
	for source, kwh := range energy.SourcesTodayKWh {
		t.writeAPI.WritePoint(influxdb2.NewPoint("energy",
			map[string]string{"source": source},
			map[string]interface{}{
				"today_kwh":    kwh,
				"lifetime_kwh": energy.SourcesLifetimeKWh[source],
			},
			now))
	}
}

// LastErrorAge reports how long the sink has been writing cleanly.
func (t *Telemetry) LastErrorAge() time.Duration {
	if t == nil {
		return 99999 * time.Hour
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return time.Since(t.lastErr)
}

// Close flushes buffered points and shuts the client down.
func (t *Telemetry) Close() {
	if t == nil {
		return
	}
	t.writeAPI.Flush()
	t.client.Close()
}
