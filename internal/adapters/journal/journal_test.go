package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/ports"
)

func setupTestJournal(t *testing.T) *Journal {
	t.Helper()

	j, err := New(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err, "New() failed")
	t.Cleanup(func() { j.Close() })

	return j
}

func TestJournal_Contract(t *testing.T) {
	ports.RunJournalContract(t, setupTestJournal(t))
}

func TestJournal_FailedRunIsRecorded(t *testing.T) {
	j := setupTestJournal(t)
	ctx := context.Background()

	runID, err := j.BeginRun(ctx, "provision-jms")
	require.NoError(t, err)

	require.NoError(t, j.RecordStep(ctx, runID, domain.StepResult{
		StepID: "jms.start-edit", Status: domain.StepApplied, At: time.Now(), Duration: 12 * time.Millisecond,
	}))
	require.NoError(t, j.RecordStep(ctx, runID, domain.StepResult{
		StepID: "jms.create-module", Status: domain.StepFailed,
		Err: errors.New("server returned 502"), At: time.Now(),
	}))
	require.NoError(t, j.EndRun(ctx, runID, errors.New("step jms.create-module: server returned 502")))

	results, err := j.StepResults(ctx, runID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.StepApplied, results[0].Status)
	assert.Equal(t, domain.StepFailed, results[1].Status)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "502")
}

func TestJournal_EndRunUnknownID(t *testing.T) {
	j := setupTestJournal(t)

	err := j.EndRun(context.Background(), "0198f000-0000-7000-8000-000000000000", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not recorded")
}

func TestJournal_ReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := New(path)
	require.NoError(t, err)

	runID, err := j.BeginRun(context.Background(), "create-domain")
	require.NoError(t, err)
	require.NoError(t, j.RecordStep(context.Background(), runID, domain.StepResult{
		StepID: "domain.write", Status: domain.StepApplied, At: time.Now(),
	}))
	require.NoError(t, j.EndRun(context.Background(), runID, nil))
	require.NoError(t, j.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	results, err := reopened.StepResults(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "domain.write", results[0].StepID)
}
