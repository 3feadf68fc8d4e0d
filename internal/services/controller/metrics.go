package controller

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model/messages"
)

// Metrics holds the controller's Prometheus collectors. Registered on a
// private registry so tests can build throwaway instances without
// colliding on the default one.
type Metrics struct {
	registry *prometheus.Registry

	controlCycles    prometheus.Counter
	sensorReadErrors *prometheus.CounterVec
	sensorStatus     *prometheus.GaugeVec
	temperature      *prometheus.GaugeVec
	pumpOn           prometheus.Gauge
	heaterOn         prometheus.Gauge
	energyToday      *prometheus.GaugeVec
	mqttConnected    prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		controlCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunheat_control_cycles_total",
			Help: "Completed control cycles since start.",
		}),
		sensorReadErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sunheat_sensor_read_errors_total",
			Help: "Sensor reads that exhausted all retries.",
		}, []string{"role"}),
		sensorStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sunheat_sensor_status",
			Help: "Sensor health: 0 healthy, 1 degraded, 2 failed.",
		}, []string{"role"}),
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sunheat_temperature_celsius",
			Help: "Latest usable temperature per sensor role.",
		}, []string{"role"}),
		pumpOn: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sunheat_pump_on",
			Help: "1 while the circulation pump relay is closed.",
		}),
		heaterOn: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sunheat_heater_on",
			Help: "1 while the backup heater relay is closed.",
		}),
		energyToday: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sunheat_energy_collected_kwh",
			Help: "Energy collected since the last midnight reset.",
		}, []string{"source"}),
		mqttConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sunheat_mqtt_connected",
			Help: "1 while the broker connection is up.",
		}),
	}
	m.registry.MustRegister(
		m.controlCycles, m.sensorReadErrors, m.sensorStatus, m.temperature,
		m.pumpOn, m.heaterOn, m.energyToday, m.mqttConnected,
	)
	return m
}

// Registry exposes the private registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveCycle updates every per-cycle gauge in one place.
func (m *Metrics) ObserveCycle(temps map[model.SensorRole]model.HealthReading, state model.SystemState, energy messages.EnergyTotals) {
	m.controlCycles.Inc()
	for role, r := range temps {
		m.sensorStatus.WithLabelValues(string(role)).Set(statusValue(r.Status))
		if r.Valid {
			m.temperature.WithLabelValues(string(role)).Set(r.ValueC)
		}
	}
	m.pumpOn.Set(boolValue(state.PumpOn))
	m.heaterOn.Set(boolValue(state.HeaterOn))
	for source, kwh := range energy.SourcesTodayKWh {
		m.energyToday.WithLabelValues(source).Set(kwh)
	}
}

// ObserveReadError counts one exhausted-retry failure for a role.
func (m *Metrics) ObserveReadError(role model.SensorRole) {
	m.sensorReadErrors.WithLabelValues(string(role)).Inc()
}

// SetMQTTConnected mirrors the broker connection state.
func (m *Metrics) SetMQTTConnected(up bool) {
	m.mqttConnected.Set(boolValue(up))
}

func statusValue(s model.HealthStatus) float64 {
	switch s {
	case model.HealthHealthy:
		return 0
	case model.HealthDegraded:
		return 1
	default:
		return 2
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
