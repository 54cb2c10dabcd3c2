// Package inventory is a thin passthrough over the backend's stock
// endpoints: the rows are forms-over-API, all business rules stay on
// the backend.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errors returned before any network call is issued.
var (
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrEmptyName       = errors.New("name is required")
	ErrNegativePrice   = errors.New("price must be >= 0")
)

// Doer is the slice of the backend client this package needs.
type Doer interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Row is one stock row as the dashboard shows it.
type Row struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// rowRecord is a stock row as the backend serialises it.
type rowRecord struct {
	ID            int64  `json:"id"`
	HamburguesaID int64  `json:"hamburguesa_id"`
	Item          string `json:"item"`
	Cantidad      int    `json:"cantidad"`
}

// Client wraps the backend's stock endpoints.
type Client struct {
	backend Doer
}

// NewClient creates a stock client.
func NewClient(backend Doer) *Client {
	return &Client{backend: backend}
}

// List fetches every stock row.
func (c *Client) List(ctx context.Context) ([]Row, error) {
	var records []rowRecord
	if err := c.backend.Get(ctx, "/stock", &records); err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{ID: r.ID, ProductID: r.HamburguesaID, Name: r.Item, Quantity: r.Cantidad}
	}
	return rows, nil
}

// AddToProduct adds stock to an existing product.
func (c *Client) AddToProduct(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	body := map[string]any{"hamburguesa_id": productID, "cantidad": quantity}
	if err := c.backend.Post(ctx, "/stock", body, nil); err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// CreateByName creates a new product with an initial stock load. Price
// is optional and defaults to zero.
func (c *Client) CreateByName(ctx context.Context, name string, quantity int, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	body := map[string]any{"nombre": name, "cantidad": quantity, "precio": price}
	if err := c.backend.Post(ctx, "/stock/by-name", body, nil); err != nil {
		return fmt.Errorf("create stock by name: %w", err)
	}
	return nil
}

// UpdateQuantity replaces the quantity of a stock row.
func (c *Client) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if err := c.backend.Put(ctx, fmt.Sprintf("/stock/%d", id), map[string]any{"cantidad": quantity}, nil); err != nil {
		return fmt.Errorf("update stock %d: %w", id, err)
	}
	return nil
}

// Remove deletes a stock row. Destructive; the caller confirms first.
func (c *Client) Remove(ctx context.Context, id int64) error {
	if err := c.backend.Delete(ctx, fmt.Sprintf("/stock/%d", id)); err != nil {
		return fmt.Errorf("delete stock %d: %w", id, err)
	}
	return nil
}

// FilterByName returns the rows whose name contains the query,
// case-insensitively. An empty query returns everything.
func FilterByName(rows []Row, query string) []Row {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}
