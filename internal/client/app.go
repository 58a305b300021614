package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/config"
	"github.com/samidy/monosync/internal/identity"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/service"
	"github.com/samidy/monosync/internal/store"
	"github.com/samidy/monosync/internal/tui"
	"github.com/samidy/monosync/internal/workers"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(log *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	records := baas.NewClient(baas.ClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.RequestTimeout,
	}, log)

	ids := identity.NewProvider(records, log)

	onChange := func(event service.ChangeEvent) {
		log.Debug().Str("event", string(event)).Msg("library state changed")
	}
	services := service.NewClientServices(storages, records, ids, onChange, log)

	ui, err := tui.New(services, ids, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(workers.NewAuthSyncWorker(ids.Subscribe(), services.Engine, log)),
		tui:      ui,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.workers.Run()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
