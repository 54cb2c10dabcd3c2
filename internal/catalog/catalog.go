// Package catalog caches the backend's orderable-item catalogs and
// defines the two fixed extra catalogs that only ever become notes text.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/pampa-pos/dashboard/internal/model"
)

// Fetcher is the slice of the backend client the cache needs.
type Fetcher interface {
	ListDishes(ctx context.Context) ([]model.CatalogRecord, error)
	ListBeverages(ctx context.Context) ([]model.CatalogRecord, error)
}

// Cache holds the current dish and beverage catalogs. The workflow reads
// from it; only Refresh replaces its contents.
type Cache struct {
	fetcher Fetcher

	mu        sync.RWMutex
	dishes    []model.CatalogItem
	beverages []model.CatalogItem
}

// NewCache creates an empty catalog cache.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Refresh replaces both catalogs with whatever the backend reports.
// A failed fetch leaves the previous snapshot in place.
func (c *Cache) Refresh(ctx context.Context) error {
	dishRecords, err := c.fetcher.ListDishes(ctx)
	if err != nil {
		return fmt.Errorf("refresh dishes: %w", err)
	}
	beverageRecords, err := c.fetcher.ListBeverages(ctx)
	if err != nil {
		return fmt.Errorf("refresh beverages: %w", err)
	}

	dishes := make([]model.CatalogItem, len(dishRecords))
	for i, r := range dishRecords {
		dishes[i] = r.Normalize()
	}
	beverages := make([]model.CatalogItem, len(beverageRecords))
	for i, r := range beverageRecords {
		beverages[i] = r.Normalize()
	}

	c.mu.Lock()
	c.dishes = dishes
	c.beverages = beverages
	c.mu.Unlock()
	return nil
}

// Dishes returns the cached dish catalog in backend order.
func (c *Cache) Dishes() []model.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CatalogItem, len(c.dishes))
	copy(out, c.dishes)
	return out
}

// Beverages returns the cached beverage catalog in backend order.
func (c *Cache) Beverages() []model.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CatalogItem, len(c.beverages))
	copy(out, c.beverages)
	return out
}
