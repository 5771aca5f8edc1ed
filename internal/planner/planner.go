// Package planner builds the ordered step sequences for both provisioning
// recipes. Plans are deterministic: the same inputs always produce the same
// steps in the same order. Conditional behavior (administration port off,
// JMS server already present) is encoded here, not in the runner.
package planner

import (
	"context"
	"fmt"

	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/ports"
)

// CreateDomain builds the plan that creates a server domain from a template.
//
// When the administration port is disabled, neither the port assignment nor
// the SSL channel step is emitted.
func CreateDomain(client ports.AdminClient, spec domain.DomainSpec) domain.Plan {
	steps := []domain.Step{
		{
			ID:          "domain.read-template",
			Description: fmt.Sprintf("read domain template %s", spec.TemplatePath),
			Apply: func(ctx context.Context) error {
				return client.ReadTemplate(ctx, spec.TemplatePath)
			},
		},
		{
			ID:          "domain.set-name",
			Description: fmt.Sprintf("set domain name to %q", spec.Name),
			Apply: func(ctx context.Context) error {
				return client.SetDomainName(ctx, spec.Name)
			},
		},
		{
			ID:          "domain.configure-admin-server",
			Description: fmt.Sprintf("configure admin server %q on port %d", spec.AdminServer.Name, spec.AdminServer.ListenPort),
			Apply: func(ctx context.Context) error {
				return client.ConfigureAdminServer(ctx, spec.AdminServer)
			},
		},
		{
			ID:          "domain.set-credentials",
			Description: fmt.Sprintf("set administrative credentials for %q", spec.Username),
			Apply: func(ctx context.Context) error {
				return client.SetCredentials(ctx, spec.Username, spec.Password)
			},
		},
		{
			ID:          "domain.set-production-mode",
			Description: fmt.Sprintf("set production mode to %t", spec.ProductionMode),
			Apply: func(ctx context.Context) error {
				return client.SetProductionMode(ctx, spec.ProductionMode)
			},
		},
	}

	if spec.AdminServer.AdministrationPortEnabled {
		port := spec.AdminServer.AdministrationPort
		server := spec.AdminServer.Name
		steps = append(steps,
			domain.Step{
				ID:          "domain.enable-administration-port",
				Description: fmt.Sprintf("enable administration port %d", port),
				Apply: func(ctx context.Context) error {
					return client.EnableAdministrationPort(ctx, port)
				},
			},
			domain.Step{
				ID:          "domain.create-admin-ssl-channel",
				Description: fmt.Sprintf("create admin SSL channel on %q for port %d", server, port),
				Apply: func(ctx context.Context) error {
					return client.CreateAdminSSLChannel(ctx, server, port)
				},
			},
		)
	}

	steps = append(steps, domain.Step{
		ID:          "domain.write",
		Description: fmt.Sprintf("write and activate domain %q", spec.Name),
		Apply: func(ctx context.Context) error {
			return client.WriteDomain(ctx, spec.Name)
		},
	})

	return domain.Plan{Name: "create-domain", Steps: steps}
}

// ProvisionJMS builds the plan that provisions messaging resources against a
// running admin instance: server, module, subdeployment, connection factory,
// queue, distributed queue and its members, then activate.
//
// The JMS server create is guarded by an existence probe so re-running the
// plan never creates a second server.
func ProvisionJMS(client ports.AdminClient, m domain.Messaging) domain.Plan {
	target := m.Target
	if target.Name == "" {
		target = domain.Target{Name: "AdminServer", Type: "Server"}
	}

	steps := []domain.Step{
		{
			ID:          "jms.start-edit",
			Description: "start edit session",
			Apply:       client.StartEdit,
		},
		{
			ID:          "jms.ensure-server",
			Description: fmt.Sprintf("create JMS server %q on %q", m.JMSServer, target.Name),
			Apply: func(ctx context.Context) error {
				exists, err := client.JMSServerExists(ctx, m.JMSServer)
				if err != nil {
					return err
				}
				if exists {
					return domain.ErrStepSkipped
				}
				return client.CreateJMSServer(ctx, m.JMSServer, target)
			},
		},
		{
			ID:          "jms.create-module",
			Description: fmt.Sprintf("create JMS system module %q", m.Module),
			Apply: func(ctx context.Context) error {
				return client.CreateJMSModule(ctx, m.Module, target)
			},
		},
		{
			ID:          "jms.create-subdeployment",
			Description: fmt.Sprintf("create subdeployment %q on %q", m.SubDeployment, m.JMSServer),
			Apply: func(ctx context.Context) error {
				return client.CreateSubDeployment(ctx, m.Module, m.SubDeployment, m.JMSServer)
			},
		},
		{
			ID:          "jms.create-connection-factory",
			Description: fmt.Sprintf("create connection factory %q (%s)", m.ConnectionFactory.Name, m.ConnectionFactory.JNDI),
			Apply: func(ctx context.Context) error {
				return client.CreateConnectionFactory(ctx, m.Module, m.ConnectionFactory)
			},
		},
		{
			ID:          "jms.create-queue",
			Description: fmt.Sprintf("create queue %q (%s)", m.Queue.Name, m.Queue.JNDI),
			Apply: func(ctx context.Context) error {
				return client.CreateQueue(ctx, m.Module, m.Queue, m.SubDeployment)
			},
		},
		{
			ID:          "jms.create-distributed-queue",
			Description: fmt.Sprintf("create distributed queue %q (%s)", m.DistributedQueue.Name, m.DistributedQueue.JNDI),
			Apply: func(ctx context.Context) error {
				return client.CreateDistributedQueue(ctx, m.Module, m.DistributedQueue)
			},
		},
	}

	for _, member := range m.DistributedQueue.MemberQueues() {
		steps = append(steps, domain.Step{
			ID:          "jms.create-member-queue." + member.Name,
			Description: fmt.Sprintf("create member queue %q (%s)", member.Name, member.JNDI),
			Apply: func(ctx context.Context) error {
				return client.CreateQueue(ctx, m.Module, member, m.SubDeployment)
			},
		})
	}

	for _, member := range m.DistributedQueue.Members {
		steps = append(steps, domain.Step{
			ID:          "jms.add-member." + member,
			Description: fmt.Sprintf("add %q to distributed queue %q", member, m.DistributedQueue.Name),
			Apply: func(ctx context.Context) error {
				return client.AddDistributedQueueMember(ctx, m.Module, m.DistributedQueue.Name, member)
			},
		})
	}

	steps = append(steps, domain.Step{
		ID:          "jms.activate",
		Description: "activate changes",
		Apply:       client.Activate,
	})

	return domain.Plan{Name: "provision-jms", Steps: steps}
}
