// Package handler exposes the dashboard's HTTP API over chi.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pampa-pos/dashboard/internal/backend"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// backendStatus maps a failed backend call to the status the dashboard
// API should answer with: a backend 404 stays a 404, any other backend
// reply or a transport failure becomes a 502.
func backendStatus(err error) int {
	var se *backend.StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
