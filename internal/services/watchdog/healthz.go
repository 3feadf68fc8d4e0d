package watchdog

import (
	"encoding/json"
	"net/http"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/model"
)

// NewHealthMux serves the combined verdict: down when any signal is failed,
// degraded when any is degraded or still unknown, ok otherwise.
func NewHealthMux(svc *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		statuses := svc.Statuses()
		verdict := "ok"
		for _, st := range statuses {
			switch st {
			case model.HealthFailed:
				verdict = "down"
			case model.HealthDegraded, model.HealthUnknown:
				if verdict == "ok" {
					verdict = "degraded"
				}
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Status  string                        `json:"status"`
			Signals map[string]model.HealthStatus `json:"signals"`
		}{Status: verdict, Signals: statuses})
	})
	return mux
}
