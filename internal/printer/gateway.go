// Package printer gates print actions on the last known health of the
// receipt printer and keeps that health fresh with a polling loop.
package printer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrUnavailable is returned when a manual print is requested while the
// printer was last seen down.
var ErrUnavailable = errors.New("printer unavailable")

// Health is the last probed printer state. It starts unknown and never
// returns to unknown once a probe has completed.
type Health int

const (
	HealthUnknown Health = iota
	HealthOK
	HealthDown
)

func (h Health) String() string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthDown:
		return "down"
	}
	return "unknown"
}

// Prober is the slice of the backend client the gateway needs.
type Prober interface {
	PrinterHealth(ctx context.Context) (bool, error)
	PrintOrder(ctx context.Context, id int64) error
}

// Gateway tracks printer health and performs print requests. Health is
// advisory: it disables the manual print action but never blocks
// automatic printing at order creation.
type Gateway struct {
	client   Prober
	interval time.Duration
	log      *zap.SugaredLogger

	mu     sync.RWMutex
	health Health
}

// NewGateway creates a gateway with unknown health.
func NewGateway(client Prober, interval time.Duration, log *zap.SugaredLogger) *Gateway {
	return &Gateway{client: client, interval: interval, log: log}
}

// Health returns the last probed state.
func (g *Gateway) Health() Health {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.health
}

// OK returns nil while no probe has completed, otherwise a pointer to
// the probed boolean. Handy for the {"ok": null|true|false} wire shape.
func (g *Gateway) OK() *bool {
	switch g.Health() {
	case HealthOK:
		ok := true
		return &ok
	case HealthDown:
		ok := false
		return &ok
	}
	return nil
}

// Check probes the printer once and records the result. Any failure
// (transport error, non-2xx, malformed reply) counts as down. A manual
// Check may overlap an in-flight interval probe; whichever response
// lands last wins.
func (g *Gateway) Check(ctx context.Context) Health {
	ok, err := g.client.PrinterHealth(ctx)

	next := HealthDown
	if err == nil && ok {
		next = HealthOK
	}
	if err != nil {
		g.log.Debugw("printer probe failed", "error", err)
	}

	g.mu.Lock()
	g.health = next
	g.mu.Unlock()
	return next
}

// Run probes immediately and then on every interval tick until ctx is
// cancelled. The loop issues at most one probe at a time; it is meant
// to live exactly as long as the workflow that started it.
func (g *Gateway) Run(ctx context.Context) {
	g.Check(ctx)

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Check(ctx)
		}
	}
}

// Print performs an explicit, user-requested print. It is refused while
// the printer was last seen down, and any backend failure is surfaced
// to the caller.
func (g *Gateway) Print(ctx context.Context, orderID int64) error {
	if g.Health() == HealthDown {
		return ErrUnavailable
	}
	return g.client.PrintOrder(ctx, orderID)
}

// AutoPrint performs the best-effort print at order creation. It runs
// regardless of known health, and a failure is logged and swallowed so
// a dead printer never fails the order itself.
func (g *Gateway) AutoPrint(ctx context.Context, orderID int64) {
	if err := g.client.PrintOrder(ctx, orderID); err != nil {
		g.log.Warnw("automatic print failed", "order_id", orderID, "error", err)
	}
}
