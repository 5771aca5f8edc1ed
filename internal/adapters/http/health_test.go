package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	health := NewHealth()
	handler := NewHandler(health, prometheus.NewRegistry())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	get := func(path string) *http.Response {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("healthz is always ok", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/healthz").StatusCode)
	})

	t.Run("readyz reflects run state", func(t *testing.T) {
		health.SetRunning("provision-jms")
		assert.Equal(t, http.StatusServiceUnavailable, get("/readyz").StatusCode)

		health.SetDone()
		assert.Equal(t, http.StatusOK, get("/readyz").StatusCode)
	})

	t.Run("metrics endpoint serves", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "wlsprov_test_total"})
		reg.MustRegister(counter)
		counter.Inc()

		metricsSrv := httptest.NewServer(NewHandler(NewHealth(), reg))
		t.Cleanup(metricsSrv.Close)

		resp, err := http.Get(metricsSrv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
