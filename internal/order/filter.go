package order

import (
	"strconv"
	"strings"

	"github.com/pampa-pos/dashboard/internal/model"
)

// Filter returns the orders matching a free-text query and a status
// filter. An empty status matches every status; an empty query matches
// every order. Text matching is a case-insensitive substring test over
// the customer name, the id rendered as text, and the notes. Results
// keep repository order; nothing is re-ranked.
func Filter(orders []model.Order, query, status string) []model.Order {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		if q != "" && !matchesText(o, q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesText(o model.Order, q string) bool {
	return strings.Contains(strings.ToLower(o.Customer), q) ||
		strings.Contains(strconv.FormatInt(o.ID, 10), q) ||
		strings.Contains(strings.ToLower(o.Notes), q)
}
