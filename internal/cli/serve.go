package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mquint/hexloop/internal/config"
	"github.com/mquint/hexloop/internal/lattice"
	"github.com/mquint/hexloop/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Config string
	Port   int

	// RNG allows overriding the randomness source (for testing).
	// If nil, defaults to an entropy-seeded generator.
	RNG lattice.Rand
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the lattice HTTP server",
		Long: `Run the HTTP facade over a single in-memory lattice.

The lattice is seeded from the configuration (size and pattern) and lives for
the lifetime of the process. A --port flag overrides the configured port.

Example:
  hexloop serve
  hexloop serve --config ./hexloop.yaml --port 8080 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to YAML config file")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "listen port (overrides config)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Port != 0 {
		cfg.Port = opts.Port
	}

	var latOpts []lattice.Option
	if cfg.LegacyKeys {
		latOpts = append(latOpts, lattice.WithLegacyCycleKeys())
	}
	lat := lattice.New(cfg.Size, lattice.ParsePattern(cfg.Pattern), latOpts...)
	slog.Info("lattice seeded", "size", lat.Size(), "pattern", lattice.ParsePattern(cfg.Pattern))

	rng := opts.RNG
	if rng == nil {
		rng = lattice.NewEntropyRand()
	}
	srv := server.New(lat, rng)

	// Setup signal handling for graceful shutdown
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.Error("shutdown error", "error", shutdownErr)
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving lattice on %s. Press Ctrl-C to stop.\n", addr)

	if err := srv.Start(addr); err != nil {
		return WrapExitError(ExitFailure, "server error", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
