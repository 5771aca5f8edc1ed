package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed run can hold the provisioning lock.
const DefaultLockTTL = 5 * time.Minute

// Runner executes a Plan step by step.
type Runner struct {
	// Logger is used for step-level logging. If nil, a no-op logger is used.
	Logger *slog.Logger

	// Journal persists the audit trail. Optional; journal write failures are
	// logged but never abort a run, the remote calls are the source of truth.
	Journal ports.Journal

	// Locker serializes runs across replicas. Optional.
	Locker ports.DistributedLocker

	// LockKey is the lock identity (typically the domain name). Only used
	// when Locker is set.
	LockKey string

	// LockTTL bounds lock ownership. Defaults to DefaultLockTTL.
	LockTTL time.Duration

	// Hooks receive plan and step lifecycle events.
	Hooks domain.LifecycleHooks
}

// New creates a Runner with a no-op logger.
func New() *Runner {
	return &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run executes the plan in order. It returns the first step error, wrapped
// with the step ID; remaining steps are not attempted and no cleanup is
// performed (the recipe is "all steps or abort").
func (r *Runner) Run(ctx context.Context, plan domain.Plan) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if r.Locker != nil {
		ttl := r.LockTTL
		if ttl == 0 {
			ttl = DefaultLockTTL
		}
		unlock, err := r.Locker.Lock(ctx, r.LockKey, ttl)
		if err != nil {
			return fmt.Errorf("acquiring provisioning lock %q: %w", r.LockKey, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("failed to release provisioning lock", "key", r.LockKey, "err", err)
			}
		}()
	}

	runID := r.beginRun(ctx, logger, plan)

	r.firePlan(r.Hooks.OnPlanStart, ctx, &domain.PlanEvent{
		EventBase: eventBase(domain.EventPlanStart, runID),
		Plan:      plan.Name,
		Steps:     len(plan.Steps),
	})

	for _, step := range plan.Steps {
		result := r.runStep(ctx, logger, runID, plan.Name, step)
		if result.Status == domain.StepFailed {
			runErr := fmt.Errorf("step %s: %w", step.ID, result.Err)
			r.endRun(ctx, logger, runID, plan, runErr)
			return runErr
		}
	}

	r.endRun(ctx, logger, runID, plan, nil)
	return nil
}

func (r *Runner) runStep(ctx context.Context, logger *slog.Logger, runID, planName string, step domain.Step) domain.StepResult {
	r.fireStep(r.Hooks.OnStepStart, ctx, &domain.StepEvent{
		EventBase: eventBase(domain.EventStepStart, runID),
		Plan:      planName,
		StepID:    step.ID,
	})
	logger.Info("applying step", "step", step.ID, "desc", step.Description)

	start := time.Now()
	err := step.Apply(ctx)

	result := domain.StepResult{
		StepID:   step.ID,
		Status:   domain.StepApplied,
		Duration: time.Since(start),
		At:       start,
	}
	switch {
	case errors.Is(err, domain.ErrStepSkipped):
		result.Status = domain.StepSkipped
		logger.Info("step skipped", "step", step.ID)
	case err != nil:
		result.Status = domain.StepFailed
		result.Err = err
		logger.Error("step failed", "step", step.ID, "err", err)
	default:
		logger.Info("step applied", "step", step.ID, "duration", result.Duration)
	}

	if r.Journal != nil {
		if jerr := r.Journal.RecordStep(ctx, runID, result); jerr != nil {
			logger.Warn("journal write failed", "step", step.ID, "err", jerr)
		}
	}

	r.fireStep(r.Hooks.OnStepDone, ctx, &domain.StepEvent{
		EventBase: eventBase(domain.EventStepDone, runID),
		Plan:      planName,
		StepID:    step.ID,
		Result:    &result,
	})
	return result
}

func (r *Runner) beginRun(ctx context.Context, logger *slog.Logger, plan domain.Plan) string {
	if r.Journal != nil {
		runID, err := r.Journal.BeginRun(ctx, plan.Name)
		if err == nil {
			return runID
		}
		logger.Warn("journal begin failed", "plan", plan.Name, "err", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (r *Runner) endRun(ctx context.Context, logger *slog.Logger, runID string, plan domain.Plan, runErr error) {
	if r.Journal != nil {
		if err := r.Journal.EndRun(ctx, runID, runErr); err != nil {
			logger.Warn("journal end failed", "run", runID, "err", err)
		}
	}
	r.firePlan(r.Hooks.OnPlanEnd, ctx, &domain.PlanEvent{
		EventBase: eventBase(domain.EventPlanEnd, runID),
		Plan:      plan.Name,
		Steps:     len(plan.Steps),
		Err:       runErr,
	})
}

func (r *Runner) firePlan(hook func(context.Context, *domain.PlanEvent), ctx context.Context, ev *domain.PlanEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}

func (r *Runner) fireStep(hook func(context.Context, *domain.StepEvent), ctx context.Context, ev *domain.StepEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}

func eventBase(t domain.EventType, runID string) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, RunID: runID}
}
