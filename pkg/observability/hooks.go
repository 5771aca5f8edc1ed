package observability

import (
	"context"
	"log/slog"

	"github.com/provtools/wlsprov/pkg/domain"
)

// AuditHooks mirrors every plan and step boundary into a structured logger.
func AuditHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPlanStart: func(_ context.Context, ev *domain.PlanEvent) {
			logger.Info("run started", "plan", ev.Plan, "run", ev.RunID, "steps", ev.Steps)
		},
		OnPlanEnd: func(_ context.Context, ev *domain.PlanEvent) {
			if ev.Err != nil {
				logger.Error("run failed", "plan", ev.Plan, "run", ev.RunID, "err", ev.Err)
				return
			}
			logger.Info("run succeeded", "plan", ev.Plan, "run", ev.RunID)
		},
		OnStepDone: func(_ context.Context, ev *domain.StepEvent) {
			if ev.Result == nil {
				return
			}
			logger.Debug("step finished",
				"plan", ev.Plan,
				"step", ev.StepID,
				"status", ev.Result.Status,
				"duration", ev.Result.Duration,
			)
		},
	}
}

// Merge combines hook sets; all non-nil callbacks fire in argument order.
func Merge(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var merged domain.LifecycleHooks
	merged.OnPlanStart = mergePlan(collectPlan(sets, func(h domain.LifecycleHooks) func(context.Context, *domain.PlanEvent) { return h.OnPlanStart }))
	merged.OnPlanEnd = mergePlan(collectPlan(sets, func(h domain.LifecycleHooks) func(context.Context, *domain.PlanEvent) { return h.OnPlanEnd }))
	merged.OnStepStart = mergeStep(collectStep(sets, func(h domain.LifecycleHooks) func(context.Context, *domain.StepEvent) { return h.OnStepStart }))
	merged.OnStepDone = mergeStep(collectStep(sets, func(h domain.LifecycleHooks) func(context.Context, *domain.StepEvent) { return h.OnStepDone }))
	return merged
}

func collectPlan(sets []domain.LifecycleHooks, pick func(domain.LifecycleHooks) func(context.Context, *domain.PlanEvent)) []func(context.Context, *domain.PlanEvent) {
	var fns []func(context.Context, *domain.PlanEvent)
	for _, s := range sets {
		if fn := pick(s); fn != nil {
			fns = append(fns, fn)
		}
	}
	return fns
}

func collectStep(sets []domain.LifecycleHooks, pick func(domain.LifecycleHooks) func(context.Context, *domain.StepEvent)) []func(context.Context, *domain.StepEvent) {
	var fns []func(context.Context, *domain.StepEvent)
	for _, s := range sets {
		if fn := pick(s); fn != nil {
			fns = append(fns, fn)
		}
	}
	return fns
}

func mergePlan(fns []func(context.Context, *domain.PlanEvent)) func(context.Context, *domain.PlanEvent) {
	if len(fns) == 0 {
		return nil
	}
	return func(ctx context.Context, ev *domain.PlanEvent) {
		for _, fn := range fns {
			fn(ctx, ev)
		}
	}
}

func mergeStep(fns []func(context.Context, *domain.StepEvent)) func(context.Context, *domain.StepEvent) {
	if len(fns) == 0 {
		return nil
	}
	return func(ctx context.Context, ev *domain.StepEvent) {
		for _, fn := range fns {
			fn(ctx, ev)
		}
	}
}
