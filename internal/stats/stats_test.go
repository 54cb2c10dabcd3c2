package stats_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/pampa-pos/dashboard/internal/stats"
)

type mockDoer struct {
	getFn func(ctx context.Context, path string, out any) error
	paths []string
}

func (m *mockDoer) Get(ctx context.Context, path string, out any) error {
	m.paths = append(m.paths, path)
	if m.getFn != nil {
		return m.getFn(ctx, path, out)
	}
	return nil
}

func queryOf(t *testing.T, path string) url.Values {
	t.Helper()
	_, rawQuery, ok := strings.Cut(path, "?")
	if !ok {
		t.Fatalf("no query in %q", path)
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	return q
}

func TestSummaryQuery(t *testing.T) {
	doer := &mockDoer{
		getFn: func(ctx context.Context, path string, out any) error {
			s := out.(*stats.Summary)
			s.Pedidos = 12
			return nil
		},
	}
	client := stats.NewClient(doer)

	summary, err := client.Summary(context.Background(), "weekly", "2026-08-30")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Pedidos != 12 {
		t.Errorf("pedidos: got %d", summary.Pedidos)
	}

	if !strings.HasPrefix(doer.paths[0], "/stats/summary?") {
		t.Fatalf("path: got %q", doer.paths[0])
	}
	q := queryOf(t, doer.paths[0])
	if q.Get("scope") != "weekly" || q.Get("date") != "2026-08-30" {
		t.Errorf("query: %v", q)
	}
}

func TestSummaryOmitsEmptyDate(t *testing.T) {
	doer := &mockDoer{}
	client := stats.NewClient(doer)

	if _, err := client.Summary(context.Background(), "daily", ""); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if q := queryOf(t, doer.paths[0]); q.Has("date") {
		t.Errorf("empty date should be omitted, got %v", q)
	}
}

func TestSeriesQuery(t *testing.T) {
	doer := &mockDoer{}
	client := stats.NewClient(doer)

	if _, err := client.Series(context.Background(), "2026-08-01", "2026-08-31", "week"); err != nil {
		t.Fatalf("series: %v", err)
	}
	if !strings.HasPrefix(doer.paths[0], "/stats/series?") {
		t.Fatalf("path: got %q", doer.paths[0])
	}
	q := queryOf(t, doer.paths[0])
	if q.Get("from") != "2026-08-01" || q.Get("to") != "2026-08-31" || q.Get("granularity") != "week" {
		t.Errorf("query: %v", q)
	}
}

func TestTaxAndTopProductsEndpoints(t *testing.T) {
	doer := &mockDoer{}
	client := stats.NewClient(doer)

	if _, err := client.Tax(context.Background(), "2026-08-01", "2026-08-31"); err != nil {
		t.Fatalf("tax: %v", err)
	}
	if !strings.HasPrefix(doer.paths[0], "/stats/iva?") {
		t.Errorf("tax path: got %q", doer.paths[0])
	}

	if _, err := client.TopProducts(context.Background(), "2026-08-01", "2026-08-31", 5); err != nil {
		t.Fatalf("top products: %v", err)
	}
	if !strings.HasPrefix(doer.paths[1], "/stats/top-productos?") {
		t.Errorf("top products path: got %q", doer.paths[1])
	}
	if q := queryOf(t, doer.paths[1]); q.Get("limit") != "5" {
		t.Errorf("limit: got %q", q.Get("limit"))
	}
}
