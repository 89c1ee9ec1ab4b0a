package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/cli/config"
	controller "github.com/secmon-lab/crashstats/pkg/controller/http"
	"github.com/secmon-lab/crashstats/pkg/usecase"
	"github.com/secmon-lab/crashstats/pkg/utils/async"
	"github.com/secmon-lab/crashstats/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var (
		serverCfg     config.Server
		middlewareCfg config.Middleware
		cacheCfg      config.Cache
		dashboardCfg  config.Dashboard
	)

	flags := joinFlags(
		serverCfg.Flags(),
		middlewareCfg.Flags(),
		cacheCfg.Flags(),
		dashboardCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting crashstats server",
				slog.Any("server", serverCfg),
				slog.Any("middleware", middlewareCfg),
				slog.Any("cache", cacheCfg),
				slog.Any("dashboard", dashboardCfg),
			)

			if err := serverCfg.Validate(); err != nil {
				return err
			}

			dashboard, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			var background async.Dispatcher
			cache, err := cacheCfg.Configure(ctx, &background)
			if err != nil {
				return err
			}
			if cache != nil {
				defer func() {
					if err := cache.Close(); err != nil {
						logger.Warn("Failed to close cache", "error", err)
					}
				}()
			}
			defer background.Wait()

			m := metrics.New()
			client, bugzilla, err := middlewareCfg.Configure(cache, cacheCfg.TTL, m)
			if err != nil {
				return err
			}

			reports := usecase.NewReports(client, dashboard, usecase.WithBugzilla(bugzilla))

			server, err := controller.NewServer(ctx, serverCfg.Addr, reports,
				controller.WithMetrics(m),
				controller.WithReadHeaderTimeout(serverCfg.ReadHeaderTimeout),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				return goerr.Wrap(err, "HTTP server failed")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			// flush pending cache writes before the cache is closed
			client.Wait()
			bugzilla.Wait()

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
