package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provtools/wlsprov/internal/manifest"
	"github.com/provtools/wlsprov/internal/testutils"
	"github.com/provtools/wlsprov/pkg/domain"
)

func testDomainSpec() domain.DomainSpec {
	return domain.DomainSpec{
		Name:         "base_domain",
		TemplatePath: "/templates/wls.jar",
		AdminServer: domain.AdminServerSpec{
			Name:                      "AdminServer",
			ListenPort:                7001,
			AdministrationPortEnabled: true,
			AdministrationPort:        9002,
		},
		Username:       "weblogic",
		Password:       "welcome1",
		ProductionMode: true,
	}
}

func TestCreateDomain_StepOrder(t *testing.T) {
	client := testutils.NewFakeAdminClient()
	plan := CreateDomain(client, testDomainSpec())

	assert.Equal(t, "create-domain", plan.Name)
	assert.Equal(t, []string{
		"domain.read-template",
		"domain.set-name",
		"domain.configure-admin-server",
		"domain.set-credentials",
		"domain.set-production-mode",
		"domain.enable-administration-port",
		"domain.create-admin-ssl-channel",
		"domain.write",
	}, plan.StepIDs())
}

func TestCreateDomain_AdministrationPortDisabled(t *testing.T) {
	spec := testDomainSpec()
	spec.AdminServer.AdministrationPortEnabled = false

	client := testutils.NewFakeAdminClient()
	plan := CreateDomain(client, spec)

	ids := plan.StepIDs()
	assert.NotContains(t, ids, "domain.enable-administration-port")
	assert.NotContains(t, ids, "domain.create-admin-ssl-channel")
	assert.Equal(t, "domain.write", ids[len(ids)-1])
}

func TestCreateDomain_Deterministic(t *testing.T) {
	client := testutils.NewFakeAdminClient()
	first := CreateDomain(client, testDomainSpec()).StepIDs()
	second := CreateDomain(client, testDomainSpec()).StepIDs()
	assert.Equal(t, first, second)
}

func TestProvisionJMS_StepOrder(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	client := testutils.NewFakeAdminClient()
	plan := ProvisionJMS(client, m)

	assert.Equal(t, "provision-jms", plan.Name)
	assert.Equal(t, []string{
		"jms.start-edit",
		"jms.ensure-server",
		"jms.create-module",
		"jms.create-subdeployment",
		"jms.create-connection-factory",
		"jms.create-queue",
		"jms.create-distributed-queue",
		"jms.create-member-queue.ExampleDistributedQueueMember1",
		"jms.create-member-queue.ExampleDistributedQueueMember2",
		"jms.add-member.ExampleDistributedQueueMember1",
		"jms.add-member.ExampleDistributedQueueMember2",
		"jms.activate",
	}, plan.StepIDs())
}

func TestProvisionJMS_EnsureServerGuard(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	t.Run("creates when absent", func(t *testing.T) {
		client := testutils.NewFakeAdminClient()
		plan := ProvisionJMS(client, m)

		var ensure domain.Step
		for _, s := range plan.Steps {
			if s.ID == "jms.ensure-server" {
				ensure = s
			}
		}
		require.NotNil(t, ensure.Apply)

		require.NoError(t, ensure.Apply(context.Background()))
		assert.Contains(t, client.Calls, "CreateJMSServer ExampleJMSServer on AdminServer")
	})

	t.Run("skips when present", func(t *testing.T) {
		client := testutils.NewFakeAdminClient()
		client.ExistingJMSServers["ExampleJMSServer"] = true
		plan := ProvisionJMS(client, m)

		var ensure domain.Step
		for _, s := range plan.Steps {
			if s.ID == "jms.ensure-server" {
				ensure = s
			}
		}

		err := ensure.Apply(context.Background())
		assert.ErrorIs(t, err, domain.ErrStepSkipped)
		for _, call := range client.Calls {
			assert.NotContains(t, call, "CreateJMSServer")
		}
	})
}

func TestProvisionJMS_DefaultTarget(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)
	m.Target = domain.Target{} // unset; must fall back to the admin server

	client := testutils.NewFakeAdminClient()
	plan := ProvisionJMS(client, m)

	for _, s := range plan.Steps {
		if s.ID == "jms.ensure-server" {
			require.NoError(t, s.Apply(context.Background()))
		}
	}
	assert.Contains(t, client.Calls, "CreateJMSServer ExampleJMSServer on AdminServer")
}
