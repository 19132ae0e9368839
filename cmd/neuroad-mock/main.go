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

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/logging"
	"github.com/neuroad/neuroad-cli/internal/mockapi"
)

var (
	addr          string
	generateDelay time.Duration
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "neuroad-mock",
	Short: "In-memory NeuroAd backend for local development",
	Long: `Serves the NeuroAd HTTP contract under /api from memory.

Every session exchange signs in as the demo user. Generated media are
placeholder paths; projects are lost on exit.

  neuroad-mock --addr :8001
  NEUROAD_BACKEND_URL=http://localhost:8001 neuroad`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", ":8001", "Listen address")
	rootCmd.Flags().DurationVar(&generateDelay, "generate-delay", 3*time.Second, "Simulated generation time")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

func run(cmd *cobra.Command, args []string) error {
	logging.Init(logging.Options{Level: logLevel})

	backend := mockapi.New()
	backend.GenerateDelay = generateDelay

	srv := &http.Server{
		Addr:              addr,
		Handler:           backend,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("🚀 mock backend listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
