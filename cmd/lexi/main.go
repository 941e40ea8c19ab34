// Command lexi looks up English words from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/lexi/internal/adapters/driven/audio"
	"github.com/custodia-labs/lexi/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexi/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/lexi/internal/adapters/driven/dictionaryapi"
	"github.com/custodia-labs/lexi/internal/adapters/driving/cli"
	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/core/services"
	"github.com/custodia-labs/lexi/internal/logger"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the adapters and core services.
func bootstrap(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	var (
		store   driven.ConfigStore
		watcher driven.ConfigWatcher
	)
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
		watcher = file.NewWatcher(fileStore.Path())
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("invalid settings, using defaults: %v", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	client, err := dictionaryapi.NewClient(settings.API)
	if errors.Is(err, domain.ErrInvalidInput) {
		logger.Warn("invalid api settings, using defaults: %v", err)
		client, err = dictionaryapi.NewClient(domain.DefaultSettings().API)
	}
	if err != nil {
		return nil, fmt.Errorf("creating dictionary client: %w", err)
	}

	player := audio.NewCommandPlayer(settings.Audio.Player)

	lookupService := services.NewLookupService(client)

	return &cli.Services{
		Controller:    services.NewLookupController(lookupService),
		Lookup:        lookupService,
		Pronunciation: services.NewPronunciationService(player),
		Settings:      settingsService,
		Watcher:       watcher,
		Reconfigure: func(s domain.Settings) error {
			if err := client.Configure(s.API); err != nil {
				return err
			}
			player.SetCommand(s.Audio.Player)
			return nil
		},
		OnPlaybackExit: player.OnExit,
		ConfigPath:     store.Path(),
		LogDir:         filepath.Join(configDir, "logs"),
	}, nil
}
