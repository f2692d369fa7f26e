package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "droneflow/internal/adapters/in/http"
	"droneflow/internal/adapters/out/scheduler"
	"droneflow/internal/adapters/out/walletprovider"
	"droneflow/internal/core/application/workflow"
	"droneflow/internal/core/domain/model/wallet"
	"droneflow/internal/core/ports"
	"droneflow/internal/jobs"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	feed       *httpin.Feed
	registry   *walletprovider.Registry
	controller *workflow.Controller
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry, err := newWalletRegistry(cfg)
	if err != nil {
		return nil, err
	}

	feed := httpin.NewFeed(httpin.DefaultFeedLimit)
	controller, err := workflow.NewController(
		cfg.Workflow(),
		registry,
		scheduler.NewTimers(),
		scheduler.NewSystemClock(),
		feed,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid workflow config: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		feed:       feed,
		registry:   registry,
		controller: controller,
	}, nil
}

// Start restores a previously authorized wallet session.
func (c *CompositionRoot) Start(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Wallet providers installed", "providers", c.registry.Kinds())
	return c.controller.Start(ctx)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.controller, c.feed, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.controller, c.cfg.TrackingTickSpec, c.logger)
}

func (c *CompositionRoot) Close() error {
	return c.controller.Close()
}

// newWalletRegistry installs one in-process extension behind every configured
// capability set.
func newWalletRegistry(cfg Config) (*walletprovider.Registry, error) {
	var opts []walletprovider.ExtensionOption
	if cfg.WalletAuthorized {
		opts = append(opts, walletprovider.WithAuthorized())
	}
	if cfg.WalletReject {
		opts = append(opts, walletprovider.WithRejection())
	}
	ext := walletprovider.NewExtension(cfg.WalletAccounts, opts...)

	providers := make([]ports.WalletProvider, 0, len(cfg.WalletProviders))
	for _, name := range cfg.WalletProviders {
		if name == "" {
			continue
		}
		kind, err := wallet.ParseProviderKind(name)
		if err != nil {
			return nil, fmt.Errorf("WALLET_PROVIDERS: %w", err)
		}
		switch kind {
		case wallet.Compass:
			providers = append(providers, walletprovider.NewCompass(ext))
		case wallet.Ethereum:
			providers = append(providers, walletprovider.NewEthereum(ext))
		}
	}
	return walletprovider.NewRegistry(providers...), nil
}
