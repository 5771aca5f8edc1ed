// Package cli assembles the provisioner from configuration and runs the
// provisioning operations on behalf of the cobra commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	wlsprov "github.com/provtools/wlsprov"
	httpadapter "github.com/provtools/wlsprov/internal/adapters/http"
	"github.com/provtools/wlsprov/internal/adapters/journal"
	redislock "github.com/provtools/wlsprov/internal/adapters/redis"
	"github.com/provtools/wlsprov/internal/adapters/rest"
	"github.com/provtools/wlsprov/internal/config"
	"github.com/provtools/wlsprov/internal/logging"
	"github.com/provtools/wlsprov/internal/manifest"
	"github.com/provtools/wlsprov/internal/planner"
	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/observability"
)

// Options carries the command-line flags shared by the provisioning commands.
type Options struct {
	Debug    bool
	DryRun   bool
	Listen   string // probe/metrics listen address; empty disables
	Topology string // messaging topology override file
}

func (o Options) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.Debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// RunCreateDomain executes (or, with DryRun, prints) the create-domain plan.
func RunCreateDomain(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	spec := cfg.DomainSpec()

	if opts.DryRun {
		client := rest.New(cfg.AdminURL, cfg.AdminUsername, cfg.AdminPassword)
		return RenderPlan(planner.CreateDomain(client, spec))
	}

	return run(ctx, opts, cfg, func(p *wlsprov.Provisioner) error {
		return p.CreateDomain(ctx, spec)
	})
}

// RunProvisionJMS executes (or, with DryRun, prints) the provision-jms plan.
func RunProvisionJMS(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	m, err := manifest.Load(opts.Topology)
	if err != nil {
		return err
	}
	if m.Target.Name == "" {
		m.Target = domain.Target{Name: cfg.AdminName, Type: "Server"}
	}

	if opts.DryRun {
		client := rest.New(cfg.AdminURL, cfg.AdminUsername, cfg.AdminPassword)
		return RenderPlan(planner.ProvisionJMS(client, m))
	}

	return run(ctx, opts, cfg, func(p *wlsprov.Provisioner) error {
		return p.ProvisionJMS(ctx, m)
	})
}

// run builds the provisioner with every configured adapter and invokes op.
func run(ctx context.Context, opts Options, cfg *config.Config, op func(*wlsprov.Provisioner) error) error {
	logger := opts.logger()

	client := rest.New(cfg.AdminURL, cfg.AdminUsername, cfg.AdminPassword, rest.WithLogger(logger))

	provOpts := []wlsprov.Option{wlsprov.WithLogger(logger)}

	if cfg.JournalPath != "" {
		j, err := journal.New(cfg.JournalPath)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		provOpts = append(provOpts, wlsprov.WithJournal(j))
	}

	var locker *redislock.Locker
	if cfg.LockAddr != "" {
		locker = redislock.New(cfg.LockAddr)
		defer locker.Close()
		provOpts = append(provOpts, wlsprov.WithLocker(locker))
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	hookSets := []domain.LifecycleHooks{observability.AuditHooks(logger), metrics.Hooks()}

	if opts.Listen != "" {
		health := httpadapter.NewHealth()
		srvCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := httpadapter.Serve(srvCtx, opts.Listen, httpadapter.NewHandler(health, registry)); err != nil {
				logger.Warn("probe server stopped", "err", err)
			}
		}()
		hookSets = append(hookSets, healthHooks(health))
	}
	provOpts = append(provOpts, wlsprov.WithLifecycleHooks(observability.Merge(hookSets...)))

	p, err := wlsprov.New(client, provOpts...)
	if err != nil {
		return err
	}
	defer p.Close()

	return op(p)
}

// healthHooks flips the readiness probe around the run.
func healthHooks(h *httpadapter.Health) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPlanStart: func(_ context.Context, ev *domain.PlanEvent) {
			h.SetRunning(ev.Plan)
		},
		OnPlanEnd: func(_ context.Context, ev *domain.PlanEvent) {
			if ev.Err == nil {
				h.SetDone()
			}
		},
	}
}
