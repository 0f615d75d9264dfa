package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
)

// Probe checks one dependency, typically a database ping.
type Probe func(context.Context) error

// HealthHandler runs the named probes and reports per-dependency status.
// Responds 200 when every probe passes, 503 otherwise. Wire the mongo and
// redis healthcheck functions here.
func HealthHandler(probes map[string]Probe) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		checks := make(map[string]string, len(probes))
		for name, probe := range probes {
			if err := probe(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				checks[name] = err.Error()
				continue
			}
			checks[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(checks)
	})
}
