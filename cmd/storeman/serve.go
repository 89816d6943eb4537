package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	consolehttp "example.com/storeman/internal/interface/http"
	"example.com/storeman/internal/interface/render"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web console",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	bindFlag("server.addr", serveCmd.Flags(), "addr")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, "storeman-console")
	if err != nil {
		return err
	}
	defer a.close()

	api := consolehttp.NewAPI(consolehttp.Dependencies{
		StoreService:   a.stores,
		ProductService: a.products,
		Renderer:       render.New(cfg.UI.DateLayout, cfg.UI.TruncateAt),
		Logger:         a.log,
		Metrics:        a.metrics,
		Gatherer:       a.registry,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("console listening", zap.String("addr", cfg.Server.Addr), zap.String("api", cfg.API.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down console")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("console stopped")
	return nil
}
