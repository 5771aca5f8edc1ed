package ports

import (
	"context"

	"github.com/provtools/wlsprov/pkg/domain"
)

// AdminClient issues administrative calls against the application server's
// management API. Every call either applies the change on the server side or
// returns an error; the client holds no state beyond the open session.
//
// The call surface mirrors the two provisioning recipes, one call per step,
// so a run's remote side effects are exactly its executed plan.
type AdminClient interface {
	// Ping verifies the management endpoint is reachable with the
	// configured credentials.
	Ping(ctx context.Context) error

	// Domain creation. These calls stage a new domain from a template and
	// commit it with WriteDomain.

	ReadTemplate(ctx context.Context, path string) error
	SetDomainName(ctx context.Context, name string) error
	ConfigureAdminServer(ctx context.Context, spec domain.AdminServerSpec) error
	SetCredentials(ctx context.Context, username, password string) error
	SetProductionMode(ctx context.Context, enabled bool) error
	// EnableAdministrationPort assigns the dedicated, SSL-only
	// administration port at the domain level.
	EnableAdministrationPort(ctx context.Context, port int) error
	// CreateAdminSSLChannel adds the SSL network channel the administration
	// port traffic flows through.
	CreateAdminSSLChannel(ctx context.Context, server string, port int) error
	WriteDomain(ctx context.Context, name string) error

	// Messaging provisioning. All create calls happen inside an edit
	// session and only take effect on Activate.

	StartEdit(ctx context.Context) error
	Activate(ctx context.Context) error

	// JMSServerExists probes the current configuration for a JMS server.
	JMSServerExists(ctx context.Context, name string) (bool, error)

	CreateJMSServer(ctx context.Context, name string, target domain.Target) error
	CreateJMSModule(ctx context.Context, name string, target domain.Target) error
	CreateSubDeployment(ctx context.Context, module, name, jmsServer string) error
	CreateConnectionFactory(ctx context.Context, module string, cf domain.ConnectionFactory) error
	CreateQueue(ctx context.Context, module string, q domain.Queue, subDeployment string) error
	CreateDistributedQueue(ctx context.Context, module string, dq domain.DistributedQueue) error
	AddDistributedQueueMember(ctx context.Context, module, distributedQueue, member string) error

	// Close releases the underlying connection. The runner calls it exactly
	// once, after the last step (the "disconnect" of the recipe).
	Close() error
}
