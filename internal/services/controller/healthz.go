package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/pkg/mqttbus"
)

type healthHandler struct {
	bus       *mqttbus.Bus
	telemetry *Telemetry
}

// NewHealthMux serves /healthz, /readyz and /metrics for the controller.
func NewHealthMux(bus *mqttbus.Bus, telemetry *Telemetry, metrics *Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	h := &healthHandler{bus: bus, telemetry: telemetry}
	mux.Handle("/healthz", h)
	mux.Handle("/readyz", &readyHandler{bus: bus})
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	return mux
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	type status struct {
		Status          string  `json:"status"`
		MQTTConnected   bool    `json:"mqtt_connected"`
		LastWriteErrorS float64 `json:"last_write_error_age_sec"`
	}
	st := status{
		MQTTConnected:   h.bus != nil && h.bus.Connected(),
		LastWriteErrorS: h.telemetry.LastErrorAge().Seconds(),
	}
	switch {
	case st.MQTTConnected && h.telemetry.LastErrorAge() > 30*time.Second:
		st.Status = "ok"
	case st.MQTTConnected:
		st.Status = "degraded"
	default:
		st.Status = "down"
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}

type readyHandler struct {
	bus *mqttbus.Bus
}

func (h *readyHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	ready := h.bus != nil && h.bus.Connected()
	if !ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Ready bool `json:"ready"`
	}{Ready: ready})
}
