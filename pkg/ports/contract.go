package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// JournalReader is the optional read side a Journal may expose for
// verification. The contract only exercises it when implemented.
type JournalReader interface {
	StepResults(ctx context.Context, runID string) ([]domain.StepResult, error)
}

// RunJournalContract runs a suite of tests to verify that a Journal
// implementation adheres to the defined interface contract.
func RunJournalContract(t *testing.T, journal Journal) {
	ctx := context.Background()

	t.Run("Begin and End", func(t *testing.T) {
		runID, err := journal.BeginRun(ctx, "provision-jms")
		require.NoError(t, err, "BeginRun should not return error")
		require.NotEmpty(t, runID)

		err = journal.EndRun(ctx, runID, nil)
		assert.NoError(t, err, "EndRun should not return error")
	})

	t.Run("Record Steps In Order", func(t *testing.T) {
		runID, err := journal.BeginRun(ctx, "create-domain")
		require.NoError(t, err)

		results := []domain.StepResult{
			{StepID: "domain.load-template", Status: domain.StepApplied, At: time.Now(), Duration: time.Millisecond},
			{StepID: "domain.set-name", Status: domain.StepApplied, At: time.Now(), Duration: time.Millisecond},
			{StepID: "domain.write", Status: domain.StepFailed, Err: errors.New("boom"), At: time.Now()},
		}
		for _, res := range results {
			require.NoError(t, journal.RecordStep(ctx, runID, res))
		}
		require.NoError(t, journal.EndRun(ctx, runID, errors.New("boom")))

		reader, ok := journal.(JournalReader)
		if !ok {
			t.Skip("journal does not expose a read side")
		}

		stored, err := reader.StepResults(ctx, runID)
		require.NoError(t, err)
		require.Len(t, stored, len(results))
		for i, res := range results {
			assert.Equal(t, res.StepID, stored[i].StepID, "step order must be preserved")
			assert.Equal(t, res.Status, stored[i].Status)
		}
	})
}
