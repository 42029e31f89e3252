package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divinoviana/planoespecialindividualizado/internal/adapter"
	"github.com/divinoviana/planoespecialindividualizado/internal/config"
	"github.com/divinoviana/planoespecialindividualizado/internal/generation"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/service"
	"github.com/divinoviana/planoespecialindividualizado/internal/store"
	"github.com/divinoviana/planoespecialindividualizado/internal/tui"
	"github.com/divinoviana/planoespecialindividualizado/internal/workflow"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

const versionCheckTimeout = 3 * time.Second

var ErrUnknownMode = errors.New("unknown client mode")

type App struct {
	ui       UI
	server   adapter.ServerAdapter
	storages *store.Storages
	logger   *logger.Logger
}

// NewApp builds the client for cfg.Mode:
//   - remote: plans and generation go through the plan server;
//   - local: plans live in cfg.Storage and the generation API is called
//     directly, which requires the generation API key.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	app := &App{logger: log}

	var services *service.ClientServices
	switch cfg.Mode {
	case config.ModeRemote, "":
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
		app.server = serverAdapter
		services = service.NewClientServices(serverAdapter, log)
	case config.ModeLocal:
		generator, err := generation.NewGeminiClient(cfg.Generation, log)
		if err != nil {
			return nil, err
		}
		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create local storage: %w", err)
		}
		app.storages = storages
		services = service.NewLocalClientServices(storages, generator, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	confirmer := tui.NewConfirmer()
	controller := workflow.NewController(services.GenerationService, services.PlanService, confirmer, log)
	app.ui = tui.New(controller, confirmer, cfg.ExportDir, buildInfo, log)

	log.Info().Str("mode", cfg.Mode).Msg("client app created")
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.logServerVersion(ctx)

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// logServerVersion records the plan server build. A failure is only
// logged: the list fetch reports an unreachable server to the user.
func (a *App) logServerVersion(ctx context.Context) {
	if a.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	defer cancel()

	info, err := a.server.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.logServerVersion").Msg("plan server version unavailable")
		return
	}
	a.logger.Info().
		Str("server_version", info.Version).
		Str("server_commit", info.Commit).
		Msg("connected to plan server")
}

func (a *App) close() {
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.close").Msg("error closing local storage")
	}
}
