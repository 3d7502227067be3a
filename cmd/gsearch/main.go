package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"

	"github.com/custodia-labs/gsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/gsearch/internal/connectors/google"
	"github.com/custodia-labs/gsearch/internal/connectors/google/ajax"
	"github.com/custodia-labs/gsearch/internal/connectors/google/books"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/services"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := google.KeyHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configDir, err := file.DefaultDir()
	if err != nil {
		return fmt.Errorf("locating config directory: %w", err)
	}

	// A .env next to the config file fills in variables the working
	// directory's .env (loaded by autoload) left unset.
	if err := godotenv.Load(filepath.Join(configDir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("reading %s: %v", filepath.Join(configDir, ".env"), err)
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	resultActionService := services.NewResultActionService()

	cli.SetVersion(version)
	svc := cli.Services{
		Settings:     settingsService,
		ResultAction: resultActionService,
	}

	settings, err := settingsService.Get()
	if err != nil {
		// Leave search unconfigured so 'gsearch config' can repair the file.
		logger.Warn("invalid settings in %s: %v", settingsService.Path(), err)
		cli.SetServices(svc)
		return cli.Execute(ctx)
	}

	fetchers, err := buildFetchers(ctx, settings)
	if err != nil {
		return err
	}
	searchService := services.NewSearchService(fetchers, settings.Paging)

	historyStore, err := openHistoryStore(configDir, settings.History)
	if err != nil {
		return err
	}
	if historyStore != nil {
		defer historyStore.Close()
		searchService.SetHistoryStore(historyStore)
	}
	historyService := services.NewHistoryService(historyStore)

	svc.Search = searchService
	svc.History = historyService
	svc.WatchConfig = func(ctx context.Context) error {
		return applyConfigChanges(ctx, configStore, settingsService, searchService)
	}
	cli.SetServices(svc)
	cli.SetTUIConfig(&cli.TUIConfig{
		SearchService:       searchService,
		HistoryService:      historyService,
		ResultActionService: resultActionService,
	})

	return cli.Execute(ctx)
}

// buildFetchers serves every kind from the AJAX endpoint, swapping in the
// Books API for book searches when configured.
func buildFetchers(ctx context.Context, settings domain.Settings) (driven.Fetchers, error) {
	client := ajax.NewClient(ajax.ConfigFromSettings(settings))
	fetchers := driven.Fetchers{
		Book:   client,
		News:   client,
		Video:  client,
		Web:    client,
		Image:  client,
		Local:  client,
		Patent: client,
	}

	if settings.Backend.Book == domain.BookBackendBooks {
		fetcher, err := books.New(ctx, settings)
		if err != nil {
			return driven.Fetchers{}, fmt.Errorf("creating books backend: %w", err)
		}
		fetchers.Book = fetcher
	}

	logger.Debug("backends: book=%s, others=%s", settings.Backend.Book, ajax.BackendName)
	return fetchers, nil
}

// applyConfigChanges rebuilds the backends and page caps each time the
// config file changes, until ctx is done. History settings need a restart.
func applyConfigChanges(
	ctx context.Context,
	store *file.ConfigStore,
	settingsService *services.SettingsService,
	searchService *services.SearchService,
) error {
	changes, err := store.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching %s: %w", store.Path(), err)
	}

	for range changes {
		settings, err := settingsService.Get()
		if err != nil {
			logger.Warn("keeping previous settings, %s is invalid: %v", store.Path(), err)
			continue
		}
		fetchers, err := buildFetchers(ctx, settings)
		if err != nil {
			logger.Warn("keeping previous backends: %v", err)
			continue
		}
		searchService.Reconfigure(fetchers, settings.Paging)
		logger.Debug("settings reloaded from %s", store.Path())
	}
	return nil
}

// openHistoryStore returns nil when history is disabled.
func openHistoryStore(configDir string, settings domain.HistorySettings) (driven.HistoryStore, error) {
	if !settings.Enabled {
		return nil, nil
	}

	switch settings.Driver {
	case domain.HistoryDriverMemory:
		return memory.NewHistoryStore(), nil
	default:
		store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
		if err != nil {
			return nil, fmt.Errorf("opening history database: %w", err)
		}
		return store.HistoryStore(), nil
	}
}
