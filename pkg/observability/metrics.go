package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/provtools/wlsprov/pkg/domain"
)

// Metrics holds the prometheus collectors for provisioner runs.
type Metrics struct {
	RunsTotal    *prometheus.CounterVec
	StepsTotal   *prometheus.CounterVec
	StepDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wlsprov_runs_total",
				Help: "Provisioning runs by plan and outcome.",
			},
			[]string{"plan", "outcome"},
		),
		StepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wlsprov_steps_total",
				Help: "Executed steps by plan and status.",
			},
			[]string{"plan", "status"},
		),
		StepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wlsprov_step_duration_seconds",
				Help:    "Administrative call latency per step.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"plan"},
		),
	}
	reg.MustRegister(m.RunsTotal, m.StepsTotal, m.StepDuration)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPlanEnd: func(_ context.Context, ev *domain.PlanEvent) {
			outcome := "succeeded"
			if ev.Err != nil {
				outcome = "failed"
			}
			m.RunsTotal.WithLabelValues(ev.Plan, outcome).Inc()
		},
		OnStepDone: func(_ context.Context, ev *domain.StepEvent) {
			if ev.Result == nil {
				return
			}
			m.StepsTotal.WithLabelValues(ev.Plan, string(ev.Result.Status)).Inc()
			if ev.Result.Status != domain.StepSkipped {
				m.StepDuration.WithLabelValues(ev.Plan).Observe(ev.Result.Duration.Seconds())
			}
		},
	}
}
