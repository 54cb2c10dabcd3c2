// Package model holds the dashboard's view of backend entities and the
// normalization rules between the backend wire format and that view.
package model

import "github.com/shopspring/decimal"

// Order statuses, in lifecycle order. The backend owns the transition;
// the dashboard only ever asks for "next".
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusServed    = "served"
	StatusPaid      = "paid"
)

// statusOrder maps each status to its position in the lifecycle.
var statusOrder = map[string]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusServed:    2,
	StatusPaid:      3,
}

// StatusIndex returns the position of a status in the lifecycle,
// or -1 for an unknown status.
func StatusIndex(status string) int {
	if i, ok := statusOrder[status]; ok {
		return i
	}
	return -1
}

// IsValidStatus reports whether s is one of the four known statuses.
func IsValidStatus(s string) bool {
	return StatusIndex(s) >= 0
}

// Order types. "pedidosya" is the third-party delivery platform the
// backend recognises.
const (
	TypeDelivery   = "delivery"
	TypeThirdParty = "pedidosya"
)

// Order is the dashboard's normalized view of a backend order record.
// Total is computed by the backend and treated as opaque here.
type Order struct {
	ID       int64           `json:"id"`
	Customer string          `json:"customer"`
	Type     string          `json:"type"`
	Status   string          `json:"status"`
	Notes    string          `json:"notes"`
	TimeIn   string          `json:"time_in"`
	Total    decimal.Decimal `json:"total"`
}

// OrderRecord is an order as the backend serialises it.
type OrderRecord struct {
	ID      int64           `json:"id"`
	Cliente string          `json:"cliente"`
	Tipo    string          `json:"tipo"`
	Estado  string          `json:"estado"`
	Notas   string          `json:"notas"`
	Fecha   string          `json:"fecha"`
	Total   decimal.Decimal `json:"total"`
}

// Normalize converts a backend record into an Order, filling the
// defaults the backend may omit: status pending, type delivery, total 0.
func (r OrderRecord) Normalize() Order {
	o := Order{
		ID:       r.ID,
		Customer: r.Cliente,
		Type:     r.Tipo,
		Status:   r.Estado,
		Notes:    r.Notas,
		TimeIn:   r.Fecha,
		Total:    r.Total,
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.Type == "" {
		o.Type = TypeDelivery
	}
	return o
}

// CatalogItem is one orderable item from a backend catalog. Beverages
// may carry a zero price.
type CatalogItem struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CatalogRecord is a catalog row as the backend serialises it.
type CatalogRecord struct {
	ID     int64           `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// Normalize converts a backend catalog row into a CatalogItem.
func (r CatalogRecord) Normalize() CatalogItem {
	return CatalogItem{ID: r.ID, Name: r.Nombre, Price: r.Precio}
}
