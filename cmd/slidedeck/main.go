// Command slidedeck edits and presents slide decks in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/slidedeck/internal/adapters/driven/config/file"
	"github.com/custodia-labs/slidedeck/internal/adapters/driven/render/html"
	storagefile "github.com/custodia-labs/slidedeck/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/slidedeck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/slidedeck/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/cli"
	"github.com/custodia-labs/slidedeck/internal/converters/markdown"
	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
	"github.com/custodia-labs/slidedeck/internal/core/services"
	"github.com/custodia-labs/slidedeck/internal/logger"
	"github.com/custodia-labs/slidedeck/internal/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// envHome overrides the data directory when --home is not given.
const envHome = "SLIDEDECK_HOME"

func main() {
	if err := loadDotEnv(); err != nil {
		logger.Warn("ignoring .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// loadDotEnv loads environment files, .env by default. Missing files are
// not an error.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// buildServices wires the driven adapters into the services the commands use.
func buildServices(ctx context.Context, home string) (*cli.Services, func(), error) {
	home = resolveHome(home)

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	shutdown, err := telemetry.Setup(ctx, telemetry.Endpoint(settings.Telemetry.OTLPEndpoint), version)
	if err != nil {
		logger.Warn("telemetry disabled: %v", err)
		shutdown = func(context.Context) error { return nil }
	}

	states, closeStates, err := openStateStore(home, settings.Storage.Backend)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}

	deckService := services.NewDeckService(states, storagefile.NewDocumentFile(), markdown.New(), html.New())
	deckService.SetExportFileName(settings.Export.FileName)
	if err := deckService.Load(ctx); err != nil {
		closeStates()
		_ = shutdown(ctx)
		return nil, nil, fmt.Errorf("loading deck: %w", err)
	}

	cleanup := func() {
		closeStates()
		// The command context may already be cancelled.
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Debug("telemetry shutdown: %v", err)
		}
	}

	return &cli.Services{Deck: deckService, Settings: settingsService}, cleanup, nil
}

// openStateStore opens the configured state store and returns its closer.
func openStateStore(home string, backend domain.StorageBackend) (driven.StateStore, func(), error) {
	if backend == domain.StorageBackendMemory {
		logger.Debug("using in-memory state store")
		return memory.NewStateStore(), func() {}, nil
	}

	dataDir := ""
	if home != "" {
		dataDir = filepath.Join(home, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening state store: %w", err)
	}
	logger.Debug("state store: %s", store.Path())

	closer := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing state store: %v", err)
		}
	}
	return store.StateStore(), closer, nil
}

// resolveHome returns --home, then $SLIDEDECK_HOME. Empty means the
// adapters' default of ~/.slidedeck.
func resolveHome(flag string) string {
	if flag = strings.TrimSpace(flag); flag != "" {
		return flag
	}
	return strings.TrimSpace(os.Getenv(envHome))
}
