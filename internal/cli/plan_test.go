package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provtools/wlsprov/pkg/domain"
)

func testPlan() domain.Plan {
	noop := func(ctx context.Context) error { return nil }
	return domain.Plan{
		Name: "provision-jms",
		Steps: []domain.Step{
			{ID: "jms.start-edit", Description: "start edit session", Apply: noop},
			{ID: "jms.activate", Description: "activate changes", Apply: noop},
		},
	}
}

func TestPlanMarkdown(t *testing.T) {
	md := PlanMarkdown(testPlan())

	assert.Contains(t, md, "# Plan: provision-jms")
	assert.Contains(t, md, "2 step(s)")
	assert.Contains(t, md, "1. **jms.start-edit** — start edit session")
	assert.Contains(t, md, "2. **jms.activate** — activate changes")
}

func TestRenderPlanTo_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPlanTo(&buf, testPlan(), false))
	assert.Equal(t, PlanMarkdown(testPlan()), buf.String())
}

func TestRenderPlanTo_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPlanTo(&buf, testPlan(), true))
	assert.Contains(t, buf.String(), "jms.start-edit")
}
