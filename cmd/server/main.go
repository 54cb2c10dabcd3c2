package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pampa-pos/dashboard/internal/backend"
	"github.com/pampa-pos/dashboard/internal/catalog"
	"github.com/pampa-pos/dashboard/internal/config"
	"github.com/pampa-pos/dashboard/internal/draft"
	"github.com/pampa-pos/dashboard/internal/inventory"
	"github.com/pampa-pos/dashboard/internal/order"
	"github.com/pampa-pos/dashboard/internal/printer"
	"github.com/pampa-pos/dashboard/internal/router"
	"github.com/pampa-pos/dashboard/internal/service"
	"github.com/pampa-pos/dashboard/internal/stats"
	"github.com/pampa-pos/dashboard/internal/ws"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log); err != nil {
		log.Fatalw("dashboard stopped", "error", err)
	}
}

func run(log *zap.SugaredLogger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := backend.New(cfg.BackendURL)

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	repo := order.NewRepository(client, hub, log)
	catalogs := catalog.NewCache(client)
	gateway := printer.NewGateway(client, cfg.PrinterPollInterval, log)
	drafts := draft.NewStore()
	orders := service.NewOrderService(repo, client, gateway, log)

	// Warm the local view; the dashboard still starts if the backend is
	// down, it just shows empty lists until the first refresh succeeds.
	if err := repo.Refresh(ctx); err != nil {
		log.Warnw("initial order fetch failed", "error", err)
	}
	if err := catalogs.Refresh(ctx); err != nil {
		log.Warnw("initial catalog fetch failed", "error", err)
	}

	// Health poll lives exactly as long as the service.
	go gateway.Run(ctx)

	r := router.New(cfg, router.Deps{
		Repo:     repo,
		Drafts:   drafts,
		Orders:   orders,
		Catalogs: catalogs,
		Gateway:  gateway,
		Stock:    inventory.NewClient(client),
		Stats:    stats.NewClient(client),
		Hub:      hub,
		Log:      log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("dashboard listening", "addr", srv.Addr, "backend", cfg.BackendURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
