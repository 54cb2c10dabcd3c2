package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pampa-pos/dashboard/internal/model"
	"github.com/pampa-pos/dashboard/internal/order"
	"github.com/pampa-pos/dashboard/internal/printer"
	"go.uber.org/zap"
)

// OrderRepo defines the repository methods order handlers need.
// Satisfied by *order.Repository; narrow interface for testability.
type OrderRepo interface {
	Refresh(ctx context.Context) error
	Orders() []model.Order
	Remove(ctx context.Context, id int64) error
	Advance(ctx context.Context, id int64) (model.Order, error)
}

// PrintGateway defines the printer methods order handlers need.
type PrintGateway interface {
	Print(ctx context.Context, orderID int64) error
	Check(ctx context.Context) printer.Health
	OK() *bool
}

// OrderHandler handles the order list and its row actions.
type OrderHandler struct {
	repo    OrderRepo
	gateway PrintGateway
	log     *zap.SugaredLogger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(repo OrderRepo, gateway PrintGateway, log *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{repo: repo, gateway: gateway, log: log}
}

// RegisterRoutes registers order endpoints on the given chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/advance", h.Advance)
	r.Post("/{id}/print", h.Print)
}

type orderListResponse struct {
	Orders []model.Order `json:"orders"`
	Total  int           `json:"total"`
}

// List handles GET /orders?q=&status=. It re-fetches the full set from
// the backend, then applies the text and status filters locally in
// backend order.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !model.IsValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	if err := h.repo.Refresh(r.Context()); err != nil {
		h.log.Errorw("list orders", "error", err)
		writeError(w, backendStatus(err), "could not load orders")
		return
	}

	shown := order.Filter(h.repo.Orders(), r.URL.Query().Get("q"), status)
	writeJSON(w, http.StatusOK, orderListResponse{Orders: shown, Total: len(shown)})
}

// Delete handles DELETE /orders/{id}?confirm=true. Deleting is
// destructive and has no undo, so the confirm flag is mandatory.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "deletion requires confirm=true")
		return
	}

	if err := h.repo.Remove(r.Context(), id); err != nil {
		h.log.Errorw("delete order", "order_id", id, "error", err)
		writeError(w, backendStatus(err), "could not delete order")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Advance handles POST /orders/{id}/advance. No target status is sent:
// the backend decides the successor and the reply is rendered as-is.
func (h *OrderHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	advanced, err := h.repo.Advance(r.Context(), id)
	if err != nil {
		h.log.Errorw("advance order", "order_id", id, "error", err)
		writeError(w, backendStatus(err), "could not advance order")
		return
	}
	writeJSON(w, http.StatusOK, advanced)
}

// Print handles POST /orders/{id}/print, the explicit per-order print.
// Unlike the automatic print at creation, failure here is surfaced.
func (h *OrderHandler) Print(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := h.gateway.Print(r.Context(), id); err != nil {
		if errors.Is(err, printer.ErrUnavailable) {
			writeError(w, http.StatusConflict, "printer unavailable")
			return
		}
		h.log.Errorw("print order", "order_id", id, "error", err)
		writeError(w, backendStatus(err), "could not print order")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

func orderID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
