// Package testutils provides shared fakes for planner and runner tests.
package testutils

import (
	"context"
	"fmt"

	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/ports"
)

// FakeAdminClient records every administrative call in order. It implements
// ports.AdminClient. Individual calls can be made to fail or report existing
// resources via the exported fields.
type FakeAdminClient struct {
	// Calls holds one entry per issued call, in issue order.
	Calls []string

	// ExistingJMSServers makes JMSServerExists return true for these names.
	ExistingJMSServers map[string]bool

	// FailOn makes the named call return an error.
	FailOn map[string]error

	Closed bool
}

var _ ports.AdminClient = (*FakeAdminClient)(nil)

// NewFakeAdminClient returns an empty recording client.
func NewFakeAdminClient() *FakeAdminClient {
	return &FakeAdminClient{
		ExistingJMSServers: make(map[string]bool),
		FailOn:             make(map[string]error),
	}
}

func (f *FakeAdminClient) record(call string) error {
	f.Calls = append(f.Calls, call)
	if err, ok := f.FailOn[call]; ok {
		return err
	}
	return nil
}

func (f *FakeAdminClient) Ping(ctx context.Context) error {
	return f.record("Ping")
}

func (f *FakeAdminClient) ReadTemplate(ctx context.Context, path string) error {
	return f.record("ReadTemplate " + path)
}

func (f *FakeAdminClient) SetDomainName(ctx context.Context, name string) error {
	return f.record("SetDomainName " + name)
}

func (f *FakeAdminClient) ConfigureAdminServer(ctx context.Context, spec domain.AdminServerSpec) error {
	return f.record(fmt.Sprintf("ConfigureAdminServer %s:%d", spec.Name, spec.ListenPort))
}

func (f *FakeAdminClient) SetCredentials(ctx context.Context, username, password string) error {
	return f.record("SetCredentials " + username)
}

func (f *FakeAdminClient) SetProductionMode(ctx context.Context, enabled bool) error {
	return f.record(fmt.Sprintf("SetProductionMode %t", enabled))
}

func (f *FakeAdminClient) EnableAdministrationPort(ctx context.Context, port int) error {
	return f.record(fmt.Sprintf("EnableAdministrationPort %d", port))
}

func (f *FakeAdminClient) CreateAdminSSLChannel(ctx context.Context, server string, port int) error {
	return f.record(fmt.Sprintf("CreateAdminSSLChannel %s:%d", server, port))
}

func (f *FakeAdminClient) WriteDomain(ctx context.Context, name string) error {
	return f.record("WriteDomain " + name)
}

func (f *FakeAdminClient) StartEdit(ctx context.Context) error {
	return f.record("StartEdit")
}

func (f *FakeAdminClient) Activate(ctx context.Context) error {
	return f.record("Activate")
}

func (f *FakeAdminClient) JMSServerExists(ctx context.Context, name string) (bool, error) {
	if err := f.record("JMSServerExists " + name); err != nil {
		return false, err
	}
	return f.ExistingJMSServers[name], nil
}

func (f *FakeAdminClient) CreateJMSServer(ctx context.Context, name string, target domain.Target) error {
	return f.record(fmt.Sprintf("CreateJMSServer %s on %s", name, target.Name))
}

func (f *FakeAdminClient) CreateJMSModule(ctx context.Context, name string, target domain.Target) error {
	return f.record(fmt.Sprintf("CreateJMSModule %s on %s", name, target.Name))
}

func (f *FakeAdminClient) CreateSubDeployment(ctx context.Context, module, name, jmsServer string) error {
	return f.record(fmt.Sprintf("CreateSubDeployment %s/%s on %s", module, name, jmsServer))
}

func (f *FakeAdminClient) CreateConnectionFactory(ctx context.Context, module string, cf domain.ConnectionFactory) error {
	return f.record(fmt.Sprintf("CreateConnectionFactory %s/%s", module, cf.Name))
}

func (f *FakeAdminClient) CreateQueue(ctx context.Context, module string, q domain.Queue, subDeployment string) error {
	return f.record(fmt.Sprintf("CreateQueue %s/%s in %s", module, q.Name, subDeployment))
}

func (f *FakeAdminClient) CreateDistributedQueue(ctx context.Context, module string, dq domain.DistributedQueue) error {
	return f.record(fmt.Sprintf("CreateDistributedQueue %s/%s", module, dq.Name))
}

func (f *FakeAdminClient) AddDistributedQueueMember(ctx context.Context, module, distributedQueue, member string) error {
	return f.record(fmt.Sprintf("AddDistributedQueueMember %s/%s <- %s", module, distributedQueue, member))
}

func (f *FakeAdminClient) Close() error {
	f.Closed = true
	return nil
}
