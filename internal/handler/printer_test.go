package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pampa-pos/dashboard/internal/handler"
	"github.com/pampa-pos/dashboard/internal/printer"
)

func newPrinterRouter(gateway *mockGateway) http.Handler {
	h := handler.NewPrinterHandler(gateway)
	r := chi.NewRouter()
	r.Route("/printer", h.RegisterRoutes)
	return r
}

func TestPrinterHealthReportsLastKnownState(t *testing.T) {
	tests := []struct {
		name   string
		health printer.Health
		want   string
	}{
		{name: "unknown before first probe", health: printer.HealthUnknown, want: `{"ok":null}`},
		{name: "up", health: printer.HealthOK, want: `{"ok":true}`},
		{name: "down", health: printer.HealthDown, want: `{"ok":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPrinterRouter(&mockGateway{health: tt.health})

			rec := doRequest(t, router, http.MethodGet, "/printer/health", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status: got %d", rec.Code)
			}

			var got, want any
			json.Unmarshal(rec.Body.Bytes(), &got)
			json.Unmarshal([]byte(tt.want), &want)
			if gotMap, wantMap := got.(map[string]any), want.(map[string]any); gotMap["ok"] != wantMap["ok"] {
				t.Errorf("body: got %s, want %s", rec.Body, tt.want)
			}
		})
	}
}

func TestPrinterCheckProbesAndReports(t *testing.T) {
	router := newPrinterRouter(&mockGateway{health: printer.HealthOK})

	rec := doRequest(t, router, http.MethodPost, "/printer/check", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp struct {
		OK *bool `json:"ok"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK == nil || !*resp.OK {
		t.Errorf("got %v, want ok true", resp.OK)
	}
}
