// Package router wires the dashboard API together.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pampa-pos/dashboard/internal/catalog"
	"github.com/pampa-pos/dashboard/internal/config"
	"github.com/pampa-pos/dashboard/internal/draft"
	"github.com/pampa-pos/dashboard/internal/handler"
	"github.com/pampa-pos/dashboard/internal/inventory"
	"github.com/pampa-pos/dashboard/internal/order"
	"github.com/pampa-pos/dashboard/internal/printer"
	"github.com/pampa-pos/dashboard/internal/service"
	"github.com/pampa-pos/dashboard/internal/stats"
	"github.com/pampa-pos/dashboard/internal/ws"
	"go.uber.org/zap"
)

// Deps are the constructed components the router exposes over HTTP.
type Deps struct {
	Repo     *order.Repository
	Drafts   *draft.Store
	Orders   *service.OrderService
	Catalogs *catalog.Cache
	Gateway  *printer.Gateway
	Stock    *inventory.Client
	Stats    *stats.Client
	Hub      *ws.Hub
	Log      *zap.SugaredLogger
}

// New creates a chi router with all dashboard routes wired up.
func New(cfg *config.Config, d Deps) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// WebSocket order feed
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(d.Hub, w, r)
	})

	orderHandler := handler.NewOrderHandler(d.Repo, d.Gateway, d.Log)
	r.Route("/orders", orderHandler.RegisterRoutes)

	draftHandler := handler.NewDraftHandler(d.Drafts, d.Repo, d.Orders, d.Log)
	r.Route("/drafts", draftHandler.RegisterRoutes)

	catalogHandler := handler.NewCatalogHandler(d.Catalogs, d.Log)
	r.Route("/catalogs", catalogHandler.RegisterRoutes)

	printerHandler := handler.NewPrinterHandler(d.Gateway)
	r.Route("/printer", printerHandler.RegisterRoutes)

	inventoryHandler := handler.NewInventoryHandler(d.Stock, d.Log)
	r.Route("/stock", inventoryHandler.RegisterRoutes)

	statsHandler := handler.NewStatsHandler(d.Stats, d.Log)
	r.Route("/stats", statsHandler.RegisterRoutes)

	return r
}
