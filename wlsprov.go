// Package wlsprov is the high-level entry point for the provisioner library.
// It wires the planner, runner and adapters behind a simplified API; the CLI
// in cmd/wlsprov is a thin shell over this package.
package wlsprov

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/provtools/wlsprov/internal/logging"
	"github.com/provtools/wlsprov/internal/planner"
	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/ports"
	"github.com/provtools/wlsprov/pkg/runner"
)

// Version is the provisioner release version, overridable at build time via
// -ldflags "-X github.com/provtools/wlsprov.Version=...".
var Version = "0.1.0"

// Provisioner executes provisioning recipes against one admin instance.
type Provisioner struct {
	client   ports.AdminClient
	journal  ports.Journal
	locker   ports.DistributedLocker
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	skipPing bool
}

// Option defines a functional option for configuring the Provisioner.
type Option func(*Provisioner)

// WithJournal attaches an audit journal.
func WithJournal(j ports.Journal) Option {
	return func(p *Provisioner) {
		p.journal = j
	}
}

// WithLocker serializes runs across replicas with a distributed lock.
func WithLocker(l ports.DistributedLocker) Option {
	return func(p *Provisioner) {
		p.locker = l
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Provisioner) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provisioner) {
		p.logger = logger
	}
}

// WithoutPing skips the reachability probe before a run. Domain creation
// targets an instance that may not serve the full management tree yet.
func WithoutPing() Option {
	return func(p *Provisioner) {
		p.skipPing = true
	}
}

// New initializes a Provisioner around an admin client.
func New(client ports.AdminClient, opts ...Option) (*Provisioner, error) {
	if client == nil {
		return nil, fmt.Errorf("an admin client is required")
	}

	p := &Provisioner{
		client: client,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// PlanCreateDomain returns the create-domain plan without executing it.
func (p *Provisioner) PlanCreateDomain(spec domain.DomainSpec) domain.Plan {
	return planner.CreateDomain(p.client, spec)
}

// PlanProvisionJMS returns the provision-jms plan without executing it.
func (p *Provisioner) PlanProvisionJMS(m domain.Messaging) domain.Plan {
	return planner.ProvisionJMS(p.client, m)
}

// CreateDomain creates a server domain from a template. The run is
// fail-fast: the first failed administrative call aborts the rest.
func (p *Provisioner) CreateDomain(ctx context.Context, spec domain.DomainSpec) error {
	return p.run(ctx, p.PlanCreateDomain(spec), spec.Name)
}

// ProvisionJMS provisions the messaging topology against the running
// instance, then disconnects.
func (p *Provisioner) ProvisionJMS(ctx context.Context, m domain.Messaging) error {
	return p.run(ctx, p.PlanProvisionJMS(m), m.JMSServer)
}

func (p *Provisioner) run(ctx context.Context, plan domain.Plan, lockKey string) error {
	if !p.skipPing {
		if err := p.client.Ping(ctx); err != nil {
			return fmt.Errorf("admin instance unreachable: %w", err)
		}
	}

	r := runner.New()
	r.Logger = p.logger
	r.Journal = p.journal
	r.Locker = p.locker
	r.LockKey = lockKey
	r.Hooks = p.hooks

	runErr := r.Run(ctx, plan)

	// Disconnect regardless of outcome; there is no rollback to perform.
	if err := p.client.Close(); err != nil {
		p.logger.Warn("closing admin client", "err", err)
	}
	return runErr
}

// Close releases the journal, if any. The admin client is closed at the end
// of each run.
func (p *Provisioner) Close() error {
	if p.journal != nil {
		return p.journal.Close()
	}
	return nil
}
