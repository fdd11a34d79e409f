// Command nyaya is the legal reference, FIR tracker and assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nyayvidhi/nyaya/internal/adapters/driven/backend"
	"github.com/nyayvidhi/nyaya/internal/adapters/driven/config/env"
	"github.com/nyayvidhi/nyaya/internal/adapters/driven/config/file"
	"github.com/nyayvidhi/nyaya/internal/adapters/driven/dataset"
	"github.com/nyayvidhi/nyaya/internal/adapters/driven/pdftext"
	"github.com/nyayvidhi/nyaya/internal/adapters/driven/storage/memory"
	"github.com/nyayvidhi/nyaya/internal/adapters/driven/storage/sqlite"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/cli"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/core/services"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func(), error) {
	if err := env.LoadDotEnv(".env"); err != nil {
		return nil, nil, err
	}

	fileStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	configStore, err := env.New(fileStore, nil)
	if err != nil {
		return nil, nil, err
	}
	settings := services.NewSettingsService(configStore, filepath.Dir(fileStore.Path()))

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = settings.DataDir()
	}
	logger.Debug("data directory: %s", dataDir)

	provider, err := dataset.New(filepath.Join(dataDir, "datasets"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading datasets: %w", err)
	}

	seed, err := dataset.FIRs()
	if err != nil {
		return nil, nil, fmt.Errorf("loading FIR records: %w", err)
	}

	var (
		firStore driven.FIRStore
		outbox   driven.SubmissionStore
		closer   = func() {}
	)
	if opts.Ephemeral {
		firStore = memory.NewFIRStore(seed...)
		outbox = memory.NewSubmissionStore()
	} else {
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		n, err := store.Seed(ctx, seed)
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("seeding database: %w", err)
		}
		if n > 0 {
			logger.Debug("seeded %d FIR records into %s", n, store.Path())
		}
		firStore = store.FIRStore()
		outbox = store.SubmissionStore()
		closer = func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing database: %v", err)
			}
		}
	}

	client, err := backend.NewClient(settings.Backend())
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("configuring backend: %w", err)
	}

	legal, err := loadLegal(ctx, provider)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return &cli.Services{
		Legal:        legal,
		FIR:          services.NewFIRService(firStore, client, pdftext.New()),
		Registration: services.NewRegistrationService(outbox, client),
		Chat:         services.NewChatService(legal),
		Settings:     settings,
	}, closer, nil
}

// loadLegal builds the legal service with every dataset already
// normalised, so bad data fails here rather than on the first search.
func loadLegal(ctx context.Context, datasets driven.DatasetProvider) (*services.LegalService, error) {
	legal := services.NewLegalService(datasets)
	if err := legal.Preload(ctx); err != nil {
		return nil, fmt.Errorf("loading legal datasets: %w", err)
	}
	return legal, nil
}
