package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pampa-pos/dashboard/internal/inventory"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StockClient defines the inventory methods these handlers need.
// Satisfied by *inventory.Client.
type StockClient interface {
	List(ctx context.Context) ([]inventory.Row, error)
	AddToProduct(ctx context.Context, productID int64, quantity int) error
	CreateByName(ctx context.Context, name string, quantity int, price decimal.Decimal) error
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Remove(ctx context.Context, id int64) error
}

// InventoryHandler serves the stock screen: plain forms-over-API.
type InventoryHandler struct {
	stock StockClient
	log   *zap.SugaredLogger
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(stock StockClient, log *zap.SugaredLogger) *InventoryHandler {
	return &InventoryHandler{stock: stock, log: log}
}

// RegisterRoutes registers stock endpoints on the given chi router.
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Post("/by-name", h.CreateByName)
	r.Put("/{id}", h.UpdateQuantity)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /stock?q=.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.stock.List(r.Context())
	if err != nil {
		h.log.Errorw("list stock", "error", err)
		writeError(w, backendStatus(err), "could not load stock")
		return
	}
	writeJSON(w, http.StatusOK, inventory.FilterByName(rows, r.URL.Query().Get("q")))
}

type addStockRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Add handles POST /stock: add stock to an existing product.
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == 0 {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	if err := h.stock.AddToProduct(r.Context(), req.ProductID, req.Quantity); err != nil {
		h.stockError(w, "add stock", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

type createStockByNameRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateByName handles POST /stock/by-name: create a product and load
// its initial stock in one step.
func (h *InventoryHandler) CreateByName(w http.ResponseWriter, r *http.Request) {
	var req createStockByNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.stock.CreateByName(r.Context(), req.Name, req.Quantity, req.Price); err != nil {
		h.stockError(w, "create stock by name", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

type updateStockRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity handles PUT /stock/{id}.
func (h *InventoryHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid stock id")
		return
	}

	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.stock.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		h.stockError(w, "update stock", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /stock/{id}?confirm=true.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid stock id")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "deletion requires confirm=true")
		return
	}

	if err := h.stock.Remove(r.Context(), id); err != nil {
		h.stockError(w, "delete stock", err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *InventoryHandler) stockError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrEmptyName),
		errors.Is(err, inventory.ErrNegativePrice):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Errorw(op, "error", err)
		writeError(w, backendStatus(err), "stock request failed")
	}
}
