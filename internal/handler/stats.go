package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pampa-pos/dashboard/internal/stats"
	"go.uber.org/zap"
)

// StatsClient defines the stats methods these handlers need.
// Satisfied by *stats.Client.
type StatsClient interface {
	Summary(ctx context.Context, scope, date string) (*stats.Summary, error)
	Series(ctx context.Context, from, to, granularity string) ([]stats.SeriesPoint, error)
	Tax(ctx context.Context, from, to string) ([]stats.TaxRow, error)
	TopProducts(ctx context.Context, from, to string, limit int) ([]stats.TopProduct, error)
}

// StatsHandler serves the statistics cards and charts.
type StatsHandler struct {
	client StatsClient
	log    *zap.SugaredLogger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(client StatsClient, log *zap.SugaredLogger) *StatsHandler {
	return &StatsHandler{client: client, log: log}
}

// RegisterRoutes registers stats endpoints on the given chi router.
func (h *StatsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Get("/series", h.Series)
	r.Get("/tax", h.Tax)
	r.Get("/top-products", h.TopProducts)
}

// Summary handles GET /stats/summary?scope=&date=.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = "daily"
	}

	summary, err := h.client.Summary(r.Context(), scope, r.URL.Query().Get("date"))
	if err != nil {
		h.log.Errorw("stats summary", "error", err)
		writeError(w, backendStatus(err), "could not load summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Series handles GET /stats/series?from=&to=&granularity=.
func (h *StatsHandler) Series(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}
	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = "day"
	}

	series, err := h.client.Series(r.Context(), from, to, granularity)
	if err != nil {
		h.log.Errorw("stats series", "error", err)
		writeError(w, backendStatus(err), "could not load series")
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// Tax handles GET /stats/tax?from=&to=.
func (h *StatsHandler) Tax(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}

	rows, err := h.client.Tax(r.Context(), from, to)
	if err != nil {
		h.log.Errorw("stats tax", "error", err)
		writeError(w, backendStatus(err), "could not load tax breakdown")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// TopProducts handles GET /stats/top-products?from=&to=&limit=.
func (h *StatsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}

	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	top, err := h.client.TopProducts(r.Context(), from, to, limit)
	if err != nil {
		h.log.Errorw("stats top products", "error", err)
		writeError(w, backendStatus(err), "could not load top products")
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func dateRange(w http.ResponseWriter, r *http.Request) (from, to string, ok bool) {
	from = r.URL.Query().Get("from")
	to = r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return "", "", false
	}
	return from, to, true
}
