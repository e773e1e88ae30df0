package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"product.GO/api"
	"product.GO/config"
	"product.GO/core/ready"
	"product.GO/service/catalog"
	productService "product.GO/service/product"
)

var bannerFonts = []string{"banner", "big", "block", "slant", "standard", "small", "doom", "larry3d"}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Seed the price store and serve GET /product/:id",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, nil)
		},
	}
}

// serve blocks until ctx is cancelled or the listener fails. onReady, when
// set, is called with the bound address once the gate has opened.
func serve(ctx context.Context, cfg *config.Config, onReady func(net.Addr)) error {
	prices, closeStore, err := openPriceStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	slog.Info("price store connected", "store", cfg.PriceStore)

	svc := productService.NewService(catalog.DefaultLoader(), productService.NewAssembler(prices))
	gate := ready.NewGate()
	e, err := api.NewServer(svc, gate)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	if cfg.Banner {
		figure.NewFigure(cfg.AppName, bannerFonts[rand.Intn(len(bannerFonts))], true).Print()
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	e.Listener = ln
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http_listen", "addr", ln.Addr().String())
		if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Product routes stay behind the gate until the seed has completed.
	if err := productService.NewSeeder(prices, seedFixture(cfg)).Seed(ctx); err != nil {
		shutdown(e.Shutdown, cfg)
		// Shutdown only closes listeners the server has started tracking.
		_ = ln.Close()
		return err
	}
	gate.MarkReady()
	slog.Info("service ready")
	if onReady != nil {
		onReady(ln.Addr())
	}

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown_signal")
	}
	shutdown(e.Shutdown, cfg)
	slog.Info("service_stopped")
	return nil
}

func shutdown(fn func(context.Context) error, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		slog.Error("http_shutdown_error", "error", err)
	}
}
