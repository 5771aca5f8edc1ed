package wlsprov_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wlsprov "github.com/provtools/wlsprov"
	"github.com/provtools/wlsprov/internal/manifest"
	"github.com/provtools/wlsprov/internal/testutils"
	"github.com/provtools/wlsprov/pkg/domain"
)

func testSpec() domain.DomainSpec {
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

func TestNew_RequiresClient(t *testing.T) {
	_, err := wlsprov.New(nil)
	assert.Error(t, err)
}

func TestProvisionJMS_EndToEnd(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	client := testutils.NewFakeAdminClient()
	p, err := wlsprov.New(client)
	require.NoError(t, err)

	require.NoError(t, p.ProvisionJMS(context.Background(), m))

	require.NotEmpty(t, client.Calls)
	assert.Equal(t, "Ping", client.Calls[0], "run starts with a reachability probe")
	assert.Equal(t, "StartEdit", client.Calls[1])
	assert.Equal(t, "Activate", client.Calls[len(client.Calls)-1])
	assert.True(t, client.Closed, "client disconnects after the run")
}

func TestCreateDomain_WithoutPing(t *testing.T) {
	client := testutils.NewFakeAdminClient()
	p, err := wlsprov.New(client, wlsprov.WithoutPing())
	require.NoError(t, err)

	require.NoError(t, p.CreateDomain(context.Background(), testSpec()))

	assert.NotContains(t, client.Calls, "Ping")
	assert.Equal(t, "ReadTemplate /templates/wls.jar", client.Calls[0])
	assert.Equal(t, "WriteDomain base_domain", client.Calls[len(client.Calls)-1])
}

func TestRun_FailureClosesClient(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	client := testutils.NewFakeAdminClient()
	client.FailOn["CreateJMSModule ExampleJMSModule on AdminServer"] = errors.New("502 bad gateway")

	p, err := wlsprov.New(client)
	require.NoError(t, err)

	err = p.ProvisionJMS(context.Background(), m)
	require.Error(t, err)
	assert.ErrorContains(t, err, "jms.create-module")
	assert.True(t, client.Closed, "client disconnects even on failure")
	assert.NotContains(t, client.Calls, "Activate", "no activation after a failed step")
}

func TestProvisionJMS_UnreachableInstance(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	client := testutils.NewFakeAdminClient()
	client.FailOn["Ping"] = errors.New("connection refused")

	p, err := wlsprov.New(client)
	require.NoError(t, err)

	err = p.ProvisionJMS(context.Background(), m)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unreachable")
	assert.Equal(t, []string{"Ping"}, client.Calls, "no provisioning calls after a failed probe")
}
