package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"minigrep/internal/app"
	"minigrep/internal/logger"
	"minigrep/internal/metrics"
	"minigrep/internal/settings"
	"minigrep/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Common is shared by both binaries; *settings.Settings is supplied by the caller.
var Common = fx.Options(
	fx.WithLogger(logger.FxLogger),
	fx.Provide(
		logger.ProvideLogger,
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer {
			return reg
		},
		metrics.New,
		app.NewRunner,
	),
)

// CLI reads any path given on the command line and prints to stdout.
var CLI = fx.Options(
	Common,
	fx.Provide(
		func() app.Source { return app.OSSource{} },
		func() io.Writer { return os.Stdout },
	),
)

// Server confines reads to settings.Root and serves the search over HTTP.
var Server = fx.Options(
	Common,
	fx.Provide(
		ProvideRootSource,
		func() io.Writer { return io.Discard },
		func(r *app.Runner) web.Searcher {
			return r
		},
		web.NewSearchHandler,
	),
	fx.Invoke(StartHttpServer),
)

func ProvideRootSource(lc fx.Lifecycle, cfg *settings.Settings) (app.Source, error) {
	src, err := app.OpenRootSource(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("open root %q: %w", cfg.Root, err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return src.Close()
		},
	})
	return src, nil
}

func StartHttpServer(lc fx.Lifecycle, handler *web.SearchHandler, reg *prometheus.Registry, cfg *settings.Settings, log *zap.Logger) {
	router := chi.NewRouter()

	web.RegisterRoutes(router, handler, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	address := fmt.Sprintf(":%d", cfg.HttpPort)
	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// порт занимаем сразу, чтобы ошибка вернулась из Start
			ln, err := net.Listen("tcp", address)
			if err != nil {
				return err
			}
			log.Info("Server started", zap.String("addr", address), zap.String("root", cfg.Root))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Serve error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return server.Shutdown(ctx)
		},
	})
}
