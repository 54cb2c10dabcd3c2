// Package stats fetches sales statistics from the backend. Every figure
// is computed server-side; the dashboard only decodes and displays.
package stats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Doer is the slice of the backend client this package needs.
type Doer interface {
	Get(ctx context.Context, path string, out any) error
}

// Summary is the headline card data for a period.
type Summary struct {
	Ingresos       decimal.Decimal `json:"ingresos"`
	Pedidos        int64           `json:"pedidos"`
	TicketPromedio decimal.Decimal `json:"ticket_promedio"`
	CrecimientoPct decimal.Decimal `json:"crecimiento_pct"`
	Neto           decimal.Decimal `json:"neto"`
	IVA            decimal.Decimal `json:"iva"`
	From           string          `json:"from"`
	To             string          `json:"to"`
}

// SeriesPoint is one bucket of the sales time series.
type SeriesPoint struct {
	T       string          `json:"t"`
	Bruto   decimal.Decimal `json:"bruto"`
	Neto    decimal.Decimal `json:"neto"`
	IVA     decimal.Decimal `json:"iva"`
	Pedidos int64           `json:"pedidos"`
}

// TaxRow is one line of the tax breakdown.
type TaxRow struct {
	IVAPct decimal.Decimal `json:"iva_pct"`
	Neto   decimal.Decimal `json:"neto"`
	IVA    decimal.Decimal `json:"iva"`
	Bruto  decimal.Decimal `json:"bruto"`
}

// TopProduct is one row of the best-sellers ranking.
type TopProduct struct {
	Item     string          `json:"item"`
	Unidades int64           `json:"unidades"`
	Ventas   decimal.Decimal `json:"ventas"`
}

// Client wraps the backend's stats endpoints.
type Client struct {
	backend Doer
}

// NewClient creates a stats client.
func NewClient(backend Doer) *Client {
	return &Client{backend: backend}
}

// Summary fetches the headline figures. scope is daily/weekly/monthly;
// date (YYYY-MM-DD) is optional and defaults to today on the backend.
func (c *Client) Summary(ctx context.Context, scope, date string) (*Summary, error) {
	q := url.Values{}
	q.Set("scope", scope)
	if date != "" {
		q.Set("date", date)
	}
	var out Summary
	if err := c.backend.Get(ctx, "/stats/summary?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}
	return &out, nil
}

// Series fetches the sales time series between two dates.
func (c *Client) Series(ctx context.Context, from, to, granularity string) ([]SeriesPoint, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("granularity", granularity)
	var out []SeriesPoint
	if err := c.backend.Get(ctx, "/stats/series?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("stats series: %w", err)
	}
	return out, nil
}

// Tax fetches the tax breakdown between two dates.
func (c *Client) Tax(ctx context.Context, from, to string) ([]TaxRow, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	var out []TaxRow
	if err := c.backend.Get(ctx, "/stats/iva?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("stats tax: %w", err)
	}
	return out, nil
}

// TopProducts fetches the best-sellers ranking between two dates.
func (c *Client) TopProducts(ctx context.Context, from, to string, limit int) ([]TopProduct, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("limit", strconv.Itoa(limit))
	var out []TopProduct
	if err := c.backend.Get(ctx, "/stats/top-productos?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("stats top products: %w", err)
	}
	return out, nil
}
