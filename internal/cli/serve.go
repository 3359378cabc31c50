package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/futsalhub/booking-system/internal/api"
	"github.com/futsalhub/booking-system/internal/app"
	"github.com/futsalhub/booking-system/internal/infrastructure/config"
	"github.com/futsalhub/booking-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Port string
}

// NewServeCommand runs the HTTP shell until SIGINT or SIGTERM.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the booking HTTP API",
		Long:  "Serve the booking API. Configuration is read from the environment (PORT, JWT_SECRET, REDIS_ADDR, ...).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "listen port (overrides PORT)")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	if opts.Port != "" {
		cfg.Port = opts.Port
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	log := logger.Init(logger.Options{
		Level:   level,
		Pretty:  cfg.IsDevelopment(),
		Service: "futsal",
	})

	container, err := app.New(ctx, cfg, log)
	if err != nil {
		return WrapExitError(ExitCommandError, "start services", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn().Err(err).Msg("closing services")
		}
	}()

	e := api.NewRouter(api.ServicesFrom(container), logger.Component("http"))

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitCommandError, "serve", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return WrapExitError(ExitFailure, "shutdown", err)
	}
	return nil
}
