// Package http exposes liveness, readiness and metrics endpoints while a
// provisioning run is in flight. Init-container orchestration probes these
// to distinguish "still provisioning" from "wedged".
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Health tracks the provisioner's run state for the probe endpoints.
type Health struct {
	ready atomic.Bool
	plan  atomic.Value // string
}

// NewHealth creates a Health tracker in the "not ready" state.
func NewHealth() *Health {
	h := &Health{}
	h.plan.Store("")
	return h
}

// SetRunning marks a plan as in flight.
func (h *Health) SetRunning(plan string) {
	h.plan.Store(plan)
	h.ready.Store(false)
}

// SetDone marks the run finished; /readyz starts answering 200.
func (h *Health) SetDone() {
	h.ready.Store(true)
}

// NewHandler builds the probe router. The metrics endpoint serves the given
// registry (prometheus.DefaultRegisterer-compatible gatherers).
func NewHandler(health *Health, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		plan, _ := health.plan.Load().(string)
		if !health.ready.Load() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "provisioning",
				"plan":   plan,
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "plan": plan})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// Serve runs the probe server until ctx is canceled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.WithoutCancel(ctx))
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
