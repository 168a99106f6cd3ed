package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/genricoloni/radiod/internal/api"
	"github.com/genricoloni/radiod/internal/artwork"
	"github.com/genricoloni/radiod/internal/bus"
	"github.com/genricoloni/radiod/internal/catalog"
	"github.com/genricoloni/radiod/internal/config"
	"github.com/genricoloni/radiod/internal/domain"
	"github.com/genricoloni/radiod/internal/engine"
	"github.com/genricoloni/radiod/internal/fetcher"
	"github.com/genricoloni/radiod/internal/metrics"
	"github.com/genricoloni/radiod/internal/monitor"
	"github.com/genricoloni/radiod/internal/notification"
	"github.com/genricoloni/radiod/internal/presenter"
	"github.com/genricoloni/radiod/internal/source"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// presenterService is the platform presenter together with its lifecycle
type presenterService interface {
	domain.Presenter
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// AppOptions is the complete dependency graph of the daemon
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Provide(
		newLogger,
		config.NewAppConfig,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self(), new(catalog.Recorder), new(engine.Recorder)),
		),
		fx.Annotate(newFetcher, fx.As(new(domain.Fetcher))),
		fx.Annotate(newArtworkLoader, fx.As(new(domain.ArtworkLoader))),
		newCatalogLoader,
		fx.Annotate(
			newSource,
			fx.As(fx.Self(), new(engine.StationLookup), new(api.CatalogView)),
		),
		func() bus.Dialer { return bus.SessionDialer },
		fx.Annotate(
			monitor.NewMprisMonitor,
			fx.As(new(domain.Monitor), new(domain.PlayerController)),
		),
		newPresenter,
		func(p presenterService) domain.Presenter { return p },
		func(p presenterService) domain.NotificationManager { return p },
		notification.DefaultLabels,
		fx.Annotate(notification.NewBuilder, fx.As(new(engine.NotificationBuilder))),
		engine.NewEngine,
		newAPIServer,
	),

	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(AppOptions)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		panic(err)
	}
}

// newLogger creates the production logger, or a development one when
// RADIOD_LOG_LEVEL=debug
func newLogger() (*zap.Logger, error) {
	if strings.EqualFold(os.Getenv(config.EnvLogLevel), "debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newFetcher(logger *zap.Logger, cfg *config.AppConfig) *fetcher.HTTPFetcher {
	return fetcher.NewHTTPFetcher(logger, cfg.GetHTTPTimeout())
}

func newArtworkLoader(logger *zap.Logger, f domain.Fetcher, cfg *config.AppConfig) *artwork.Loader {
	return artwork.NewLoader(logger, f, artwork.LoaderConfig{
		Size:     cfg.GetArtworkSize(),
		CacheDir: cfg.GetCacheDir(),
	})
}

func newCatalogLoader(
	logger *zap.Logger,
	f domain.Fetcher,
	art domain.ArtworkLoader,
	recorder catalog.Recorder,
	cfg *config.AppConfig,
) *catalog.Loader {
	return catalog.NewLoader(logger, f, art, recorder, catalog.LoaderConfig{
		Workers: cfg.GetArtworkWorkers(),
	})
}

func newSource(logger *zap.Logger, loader *catalog.Loader, cfg *config.AppConfig) *source.JSONRadioSource {
	return source.NewJSONRadioSource(logger, loader, cfg.GetCatalogURL(), cfg.GetRefreshInterval())
}

func newPresenter(logger *zap.Logger, dial bus.Dialer) presenterService {
	return presenter.NewPresenter(logger, dial)
}

func newAPIServer(logger *zap.Logger, view api.CatalogView, m *metrics.Metrics, cfg *config.AppConfig) *api.Server {
	return api.NewServer(logger, view, m.Handler(), cfg.GetListenAddr())
}

// registerHooks starts the components in dependency order and stops them in reverse
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	src *source.JSONRadioSource,
	pres presenterService,
	eng *engine.Engine,
	srv *api.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := src.Start(ctx); err != nil {
				return err
			}
			// Browsing still works without a notification server
			if err := pres.Start(ctx); err != nil {
				logger.Warn("Notifications disabled", zap.Error(err))
			}
			if err := eng.Start(ctx); err != nil {
				return err
			}
			if err := srv.Start(ctx); err != nil {
				return err
			}
			logger.Info("radiod started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			if err := srv.Stop(ctx); err != nil {
				logger.Warn("HTTP server shutdown failed", zap.Error(err))
			}
			if err := eng.Stop(ctx); err != nil {
				logger.Warn("Engine shutdown failed", zap.Error(err))
			}
			if err := pres.Stop(ctx); err != nil {
				logger.Warn("Presenter shutdown failed", zap.Error(err))
			}
			return src.Stop(ctx)
		},
	})
}
