package domain

import (
	"context"
	"time"
)

// StepStatus is the journaled outcome of a single step.
type StepStatus string

const (
	StepApplied StepStatus = "applied" // the administrative call succeeded
	StepSkipped StepStatus = "skipped" // an existence guard or config flag skipped the call
	StepFailed  StepStatus = "failed"  // the call failed and aborted the run
)

// Step is one administrative call in a provisioning sequence.
// Apply is bound by the planner over the admin client; returning
// ErrStepSkipped marks the step as skipped without failing the run.
type Step struct {
	// ID is a stable, unique identifier within the plan (e.g. "jms.create-queue").
	ID string

	// Description is a short human-readable summary for logs and plan output.
	Description string

	Apply func(ctx context.Context) error
}

// Plan is an ordered, deterministic sequence of steps. Steps run strictly
// in order; the first failure aborts the remainder with no rollback.
type Plan struct {
	// Name identifies the operation ("create-domain", "provision-jms").
	Name string

	Steps []Step
}

// StepIDs returns the step identifiers in execution order.
func (p Plan) StepIDs() []string {
	ids := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		ids[i] = s.ID
	}
	return ids
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	StepID   string
	Status   StepStatus
	Err      error
	Duration time.Duration
	At       time.Time
}
