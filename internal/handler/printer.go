package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PrinterHandler exposes the gateway's advisory health.
type PrinterHandler struct {
	gateway PrintGateway
}

// NewPrinterHandler creates a new PrinterHandler.
func NewPrinterHandler(gateway PrintGateway) *PrinterHandler {
	return &PrinterHandler{gateway: gateway}
}

// RegisterRoutes registers printer endpoints on the given chi router.
func (h *PrinterHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Post("/check", h.Check)
}

type printerStatusResponse struct {
	// OK is null until the first probe completes.
	OK *bool `json:"ok"`
}

// Health handles GET /printer/health: the last known state, without
// probing.
func (h *PrinterHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, printerStatusResponse{OK: h.gateway.OK()})
}

// Check handles POST /printer/check: the manual retry. It probes right
// now, possibly overlapping an interval probe; the last response to
// land wins.
func (h *PrinterHandler) Check(w http.ResponseWriter, r *http.Request) {
	h.gateway.Check(r.Context())
	writeJSON(w, http.StatusOK, printerStatusResponse{OK: h.gateway.OK()})
}
