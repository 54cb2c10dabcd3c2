package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pampa-pos/dashboard/internal/catalog"
	"github.com/pampa-pos/dashboard/internal/model"
	"go.uber.org/zap"
)

// CatalogCache defines the cache methods catalog handlers need.
// Satisfied by *catalog.Cache.
type CatalogCache interface {
	Refresh(ctx context.Context) error
	Dishes() []model.CatalogItem
	Beverages() []model.CatalogItem
}

// CatalogHandler serves the four catalogs the composer selects from.
type CatalogHandler struct {
	cache CatalogCache
	log   *zap.SugaredLogger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cache CatalogCache, log *zap.SugaredLogger) *CatalogHandler {
	return &CatalogHandler{cache: cache, log: log}
}

// RegisterRoutes registers catalog endpoints on the given chi router.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

type catalogResponse struct {
	Dishes       []model.CatalogItem `json:"dishes"`
	Beverages    []model.CatalogItem `json:"beverages"`
	HotBeverages []catalog.ExtraItem `json:"hot_beverages"`
	Pastries     []catalog.ExtraItem `json:"pastries"`
}

// List handles GET /catalogs: the two backend catalogs, freshly
// fetched, plus the two fixed extra catalogs.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Refresh(r.Context()); err != nil {
		h.log.Errorw("refresh catalogs", "error", err)
		writeError(w, backendStatus(err), "could not load catalogs")
		return
	}

	writeJSON(w, http.StatusOK, catalogResponse{
		Dishes:       h.cache.Dishes(),
		Beverages:    h.cache.Beverages(),
		HotBeverages: catalog.HotBeverages,
		Pastries:     catalog.Pastries,
	})
}
