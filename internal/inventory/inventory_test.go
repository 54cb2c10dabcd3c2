package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pampa-pos/dashboard/internal/inventory"
	"github.com/shopspring/decimal"
)

type mockDoer struct {
	getFn    func(ctx context.Context, path string, out any) error
	postFn   func(ctx context.Context, path string, body, out any) error
	putFn    func(ctx context.Context, path string, body, out any) error
	deleteFn func(ctx context.Context, path string) error
}

func (m *mockDoer) Get(ctx context.Context, path string, out any) error {
	return m.getFn(ctx, path, out)
}

func (m *mockDoer) Post(ctx context.Context, path string, body, out any) error {
	return m.postFn(ctx, path, body, out)
}

func (m *mockDoer) Put(ctx context.Context, path string, body, out any) error {
	return m.putFn(ctx, path, body, out)
}

func (m *mockDoer) Delete(ctx context.Context, path string) error {
	return m.deleteFn(ctx, path)
}

func TestAddToProductValidatesQuantity(t *testing.T) {
	called := false
	client := inventory.NewClient(&mockDoer{
		postFn: func(ctx context.Context, path string, body, out any) error {
			called = true
			return nil
		},
	})

	if err := client.AddToProduct(context.Background(), 1, 0); !errors.Is(err, inventory.ErrInvalidQuantity) {
		t.Fatalf("got %v, want ErrInvalidQuantity", err)
	}
	if called {
		t.Fatal("invalid quantity must not reach the backend")
	}

	if err := client.AddToProduct(context.Background(), 1, 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !called {
		t.Fatal("valid add never reached the backend")
	}
}

func TestCreateByNameValidation(t *testing.T) {
	client := inventory.NewClient(&mockDoer{
		postFn: func(ctx context.Context, path string, body, out any) error { return nil },
	})
	ctx := context.Background()

	if err := client.CreateByName(ctx, "   ", 1, decimal.Zero); !errors.Is(err, inventory.ErrEmptyName) {
		t.Errorf("blank name: got %v", err)
	}
	if err := client.CreateByName(ctx, "Doble", 0, decimal.Zero); !errors.Is(err, inventory.ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v", err)
	}
	if err := client.CreateByName(ctx, "Doble", 1, decimal.NewFromInt(-1)); !errors.Is(err, inventory.ErrNegativePrice) {
		t.Errorf("negative price: got %v", err)
	}
	if err := client.CreateByName(ctx, "Doble", 1, decimal.Zero); err != nil {
		t.Errorf("zero price is valid, got %v", err)
	}
}

func TestCreateByNameSendsWireFields(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client := inventory.NewClient(&mockDoer{
		postFn: func(ctx context.Context, path string, body, out any) error {
			gotPath = path
			gotBody = body.(map[string]any)
			return nil
		},
	})

	price := decimal.NewFromFloat(1250.50)
	if err := client.CreateByName(context.Background(), " Doble ", 3, price); err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotPath != "/stock/by-name" {
		t.Errorf("path: got %q", gotPath)
	}
	if gotBody["nombre"] != "Doble" {
		t.Errorf("nombre should be trimmed, got %v", gotBody["nombre"])
	}
	if gotBody["cantidad"] != 3 {
		t.Errorf("cantidad: got %v", gotBody["cantidad"])
	}
}

func TestUpdateQuantity(t *testing.T) {
	var gotPath string
	client := inventory.NewClient(&mockDoer{
		putFn: func(ctx context.Context, path string, body, out any) error {
			gotPath = path
			return nil
		},
	})

	if err := client.UpdateQuantity(context.Background(), 7, -1); !errors.Is(err, inventory.ErrInvalidQuantity) {
		t.Fatalf("got %v, want ErrInvalidQuantity", err)
	}
	if err := client.UpdateQuantity(context.Background(), 7, 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotPath != "/stock/7" {
		t.Errorf("path: got %q", gotPath)
	}
}

func TestFilterByName(t *testing.T) {
	rows := []inventory.Row{
		{ID: 1, Name: "Pan de papa"},
		{ID: 2, Name: "Cheddar"},
		{ID: 3, Name: "Papas"},
	}

	got := inventory.FilterByName(rows, "papa")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("papa: got %+v", got)
	}

	got = inventory.FilterByName(rows, "  CHED  ")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("case-insensitive trimmed query: got %+v", got)
	}

	if got := inventory.FilterByName(rows, ""); len(got) != 3 {
		t.Errorf("empty query should return everything, got %d rows", len(got))
	}
}
