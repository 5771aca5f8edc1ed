package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPlanStart EventType = "plan_start"
	EventPlanEnd   EventType = "plan_end"
	EventStepStart EventType = "step_start"
	EventStepDone  EventType = "step_done"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// PlanEvent marks the start or end of a plan execution.
type PlanEvent struct {
	EventBase
	Plan  string `json:"plan"`
	Steps int    `json:"steps"`
	Err   error  `json:"-"`
}

// StepEvent wraps a step boundary, carrying the result on completion.
type StepEvent struct {
	EventBase
	Plan   string      `json:"plan"`
	StepID string      `json:"step_id"`
	Result *StepResult `json:"-"`
}

// LifecycleHooks defines callbacks for run observability. Nil callbacks
// are skipped.
type LifecycleHooks struct {
	OnPlanStart func(context.Context, *PlanEvent)
	OnPlanEnd   func(context.Context, *PlanEvent)
	OnStepStart func(context.Context, *StepEvent)
	OnStepDone  func(context.Context, *StepEvent)
}
