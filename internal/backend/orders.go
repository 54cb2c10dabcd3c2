package backend

import (
	"context"
	"fmt"

	"github.com/pampa-pos/dashboard/internal/model"
)

// OrderHeader is the mutable top-level part of an order: everything the
// dashboard persists except line-item details.
type OrderHeader struct {
	Cliente string `json:"cliente"`
	Tipo    string `json:"tipo"`
	Notas   string `json:"notas"`
}

// ListOrders fetches every order record the backend knows about.
func (c *Client) ListOrders(ctx context.Context) ([]model.OrderRecord, error) {
	var records []model.OrderRecord
	if err := c.Get(ctx, "/pedidos", &records); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return records, nil
}

// CreateOrder persists a new order header. The backend assigns the id
// and starts the order at pending.
func (c *Client) CreateOrder(ctx context.Context, header OrderHeader) (*model.OrderRecord, error) {
	var record model.OrderRecord
	if err := c.Post(ctx, "/pedidos", header, &record); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &record, nil
}

// UpdateOrder replaces the header of an existing order.
func (c *Client) UpdateOrder(ctx context.Context, id int64, header OrderHeader) (*model.OrderRecord, error) {
	var record model.OrderRecord
	if err := c.Put(ctx, fmt.Sprintf("/pedidos/%d", id), header, &record); err != nil {
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}
	record.ID = id
	return &record, nil
}

// DeleteOrder removes an order. Detail records cascade on the backend.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, fmt.Sprintf("/pedidos/%d", id)); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}

// AdvanceOrder asks the backend to move an order to its next status.
// The successor mapping lives on the backend; whatever record comes back
// is taken at face value.
func (c *Client) AdvanceOrder(ctx context.Context, id int64) (*model.OrderRecord, error) {
	var record model.OrderRecord
	if err := c.Patch(ctx, fmt.Sprintf("/pedidos/%d/next", id), nil, &record); err != nil {
		return nil, fmt.Errorf("advance order %d: %w", id, err)
	}
	return &record, nil
}

// PrintOrder asks the backend to send an order to the kitchen printer.
func (c *Client) PrintOrder(ctx context.Context, id int64) error {
	if err := c.Post(ctx, fmt.Sprintf("/pedidos/%d/print", id), nil, nil); err != nil {
		return fmt.Errorf("print order %d: %w", id, err)
	}
	return nil
}

// ListDishes fetches the dish catalog.
func (c *Client) ListDishes(ctx context.Context) ([]model.CatalogRecord, error) {
	var records []model.CatalogRecord
	if err := c.Get(ctx, "/hamburguesas", &records); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return records, nil
}

// ListBeverages fetches the beverage catalog.
func (c *Client) ListBeverages(ctx context.Context) ([]model.CatalogRecord, error) {
	var records []model.CatalogRecord
	if err := c.Get(ctx, "/bebidas", &records); err != nil {
		return nil, fmt.Errorf("list beverages: %w", err)
	}
	return records, nil
}

// CreateDishDetail persists one dish line for an order.
func (c *Client) CreateDishDetail(ctx context.Context, orderID, dishID int64, quantity int) error {
	body := map[string]any{
		"pedido_id":      orderID,
		"hamburguesa_id": dishID,
		"cantidad":       quantity,
	}
	if err := c.Post(ctx, "/detalle-pedidos", body, nil); err != nil {
		return fmt.Errorf("create dish detail: %w", err)
	}
	return nil
}

// CreateBeverageDetail persists one beverage line for an order.
func (c *Client) CreateBeverageDetail(ctx context.Context, orderID, beverageID int64, quantity int) error {
	body := map[string]any{
		"pedido_id": orderID,
		"bebida_id": beverageID,
		"cantidad":  quantity,
	}
	if err := c.Post(ctx, "/detalle-bebidas", body, nil); err != nil {
		return fmt.Errorf("create beverage detail: %w", err)
	}
	return nil
}

// PrinterHealth probes the receipt printer through the backend. It only
// returns true on an explicit {ok:true}; the caller treats any error as
// printer-down.
func (c *Client) PrinterHealth(ctx context.Context) (bool, error) {
	var status struct {
		OK bool `json:"ok"`
	}
	if err := c.Get(ctx, "/printer/health", &status); err != nil {
		return false, fmt.Errorf("printer health: %w", err)
	}
	return status.OK, nil
}
