package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fun-numbers/internal/calculator"
	"fun-numbers/internal/config"
	"fun-numbers/internal/game"
	"fun-numbers/internal/observability"
	"fun-numbers/internal/random"
	"fun-numbers/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	defer observability.SyncLogger()

	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer shutdown(context.Background())

	replies, err := cfg.Responses()
	if err != nil {
		return err
	}

	// Router
	rnd := random.Global()
	router := server.NewRouter(
		calculator.NewService(replies, rnd),
		game.NewService(replies, rnd),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("service", cfg.ServiceName),
			zap.Bool("exporters", cfg.ExportersEnabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	return waitForShutdown(srv, serveErr, cfg.ShutdownTimeout)
}

func waitForShutdown(srv *http.Server, serveErr <-chan error, timeout time.Duration) error {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	observability.Logger.Info("server stopping", zap.Duration("timeout", timeout))
	return srv.Shutdown(ctx)
}
