package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dispatch",
		Short:        "Delivery dispatch service: order queue and route graph",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var (
		envFile string
		port    string
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.HTTPPort = port
				if err = cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	serveCmd.Flags().StringVar(&envFile, "env-file", cmd.DefaultEnvFile, "dotenv file loaded before reading the environment")
	serveCmd.Flags().StringVar(&port, "port", "", "HTTP port, overrides HTTP_PORT")
	return serveCmd
}

func serve(ctx context.Context, cfg cmd.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	app, err := cmd.NewCompositionRoot(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	if cfg.RoutesFile != "" {
		n, loadErr := app.CreateSeedLoader().LoadFile(ctx, cfg.RoutesFile)
		if loadErr != nil {
			return fmt.Errorf("seed routes: %w", loadErr)
		}
		logger.Info("Seed routes loaded", "file", cfg.RoutesFile, "routes", n)
	}

	e, err := httpin.NewRouter(ctx, app.CreateServer(), logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(cfg.EchoLogLevel())

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	app.Ready().Set()
	logger.Info("Dispatch service started", "port", cfg.HTTPPort, "jobs", jobManager.Len())

	select {
	case err = <-serverErr:
		app.Ready().UnSet()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.Ready().UnSet()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
