package ports

import (
	"context"

	"github.com/provtools/wlsprov/pkg/domain"
)

// Journal persists an audit trail of provisioner runs. Implementations must
// tolerate being called from a single goroutine only; the runner is strictly
// sequential.
type Journal interface {
	// BeginRun records the start of a plan execution and returns a run ID.
	BeginRun(ctx context.Context, plan string) (string, error)

	// RecordStep appends the outcome of one step to the run.
	RecordStep(ctx context.Context, runID string, result domain.StepResult) error

	// EndRun finalizes the run. A nil runErr marks the run succeeded.
	EndRun(ctx context.Context, runID string, runErr error) error

	Close() error
}
