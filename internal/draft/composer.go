// Package draft holds the in-progress state of an order being composed:
// four independent line-item sequences, the header fields, and the
// rendering of extras into notes text.
package draft

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pampa-pos/dashboard/internal/catalog"
	"github.com/pampa-pos/dashboard/internal/model"
)

// LineKind discriminates the four line-item sequences of a draft. Dish
// and beverage lines become real detail records on save; hot-beverage
// and pastry lines only ever become notes text.
type LineKind string

const (
	KindDish        LineKind = "dish"
	KindBeverage    LineKind = "beverage"
	KindHotBeverage LineKind = "hot-beverage"
	KindPastry      LineKind = "pastry"
)

// Kinds lists every line kind in display order.
var Kinds = []LineKind{KindDish, KindBeverage, KindHotBeverage, KindPastry}

// ErrUnknownKind is returned for a line kind outside the four above.
var ErrUnknownKind = errors.New("unknown line kind")

// Line is one slot in a sequence. CatalogID is kept as text: real
// catalogs use numeric ids, the extra catalogs use fixed labels, and an
// empty id means the slot has no selection yet.
type Line struct {
	CatalogID string `json:"catalog_id"`
	Quantity  int    `json:"quantity"`
}

// blankLine is the template slot every sequence starts from.
func blankLine() Line {
	return Line{CatalogID: "", Quantity: 1}
}

// DetailLine is a dish or beverage line that passed the validity filter
// and is ready to be persisted as a detail record.
type DetailLine struct {
	CatalogID int64
	Quantity  int
}

// Draft is a not-yet-submitted order. EditingID is zero when the draft
// creates a new order.
type Draft struct {
	ID        uuid.UUID `json:"id"`
	EditingID int64     `json:"editing_id,omitempty"`
	Customer  string    `json:"customer"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	AutoPrint bool      `json:"auto_print"`

	DishLines        []Line `json:"dish_lines"`
	BeverageLines    []Line `json:"beverage_lines"`
	HotBeverageLines []Line `json:"hot_beverage_lines"`
	PastryLines      []Line `json:"pastry_lines"`
}

// New creates a draft for a brand-new order: delivery type, auto-print
// on, one blank slot per sequence.
func New() *Draft {
	d := &Draft{
		ID:        uuid.New(),
		Type:      model.TypeDelivery,
		AutoPrint: true,
	}
	d.resetLines()
	return d
}

// NewForEdit creates a draft pre-filled from an existing order. Line
// sequences start blank (details already persisted stay as they are;
// new lines are appended on save) and auto-print defaults off so an
// edit does not reprint the ticket.
func NewForEdit(o model.Order) *Draft {
	d := &Draft{
		ID:        uuid.New(),
		EditingID: o.ID,
		Customer:  o.Customer,
		Type:      o.Type,
		Notes:     o.Notes,
		AutoPrint: false,
	}
	d.resetLines()
	return d
}

func (d *Draft) resetLines() {
	d.DishLines = []Line{blankLine()}
	d.BeverageLines = []Line{blankLine()}
	d.HotBeverageLines = []Line{blankLine()}
	d.PastryLines = []Line{blankLine()}
}

// clone returns a snapshot whose sequences share no backing arrays with
// the original.
func (d *Draft) clone() Draft {
	out := *d
	out.DishLines = append([]Line(nil), d.DishLines...)
	out.BeverageLines = append([]Line(nil), d.BeverageLines...)
	out.HotBeverageLines = append([]Line(nil), d.HotBeverageLines...)
	out.PastryLines = append([]Line(nil), d.PastryLines...)
	return out
}

// lines returns the sequence for a kind. This is the single dispatch
// point between the kind tag and its slice.
func (d *Draft) lines(kind LineKind) (*[]Line, error) {
	switch kind {
	case KindDish:
		return &d.DishLines, nil
	case KindBeverage:
		return &d.BeverageLines, nil
	case KindHotBeverage:
		return &d.HotBeverageLines, nil
	case KindPastry:
		return &d.PastryLines, nil
	}
	return nil, ErrUnknownKind
}

// Lines returns a copy of the sequence for a kind.
func (d *Draft) Lines(kind LineKind) ([]Line, error) {
	seq, err := d.lines(kind)
	if err != nil {
		return nil, err
	}
	out := make([]Line, len(*seq))
	copy(out, *seq)
	return out, nil
}

// AddLine appends a blank slot to the sequence of the given kind.
func (d *Draft) AddLine(kind LineKind) error {
	seq, err := d.lines(kind)
	if err != nil {
		return err
	}
	*seq = append(*seq, blankLine())
	return nil
}

// RemoveLine drops the slot at index. Removing the last remaining slot
// or an out-of-range index is a no-op: every sequence keeps at least
// one slot for as long as the draft lives.
func (d *Draft) RemoveLine(kind LineKind, index int) error {
	seq, err := d.lines(kind)
	if err != nil {
		return err
	}
	if len(*seq) <= 1 || index < 0 || index >= len(*seq) {
		return nil
	}
	*seq = append((*seq)[:index], (*seq)[index+1:]...)
	return nil
}

// UpdateLine changes a single field of the slot at index, leaving every
// other slot untouched. A nil field means "leave as is".
func (d *Draft) UpdateLine(kind LineKind, index int, catalogID *string, quantity *int) error {
	seq, err := d.lines(kind)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*seq) {
		return errors.New("line index out of range")
	}
	if catalogID != nil {
		(*seq)[index].CatalogID = *catalogID
	}
	if quantity != nil {
		(*seq)[index].Quantity = *quantity
	}
	return nil
}

// DetailLines filters a real-catalog sequence down to the lines eligible
// for detail-record creation: a selected catalog item and a strictly
// positive quantity. Quantities are floored to 1 so nothing below one
// unit ever reaches the backend.
func (d *Draft) DetailLines(kind LineKind) ([]DetailLine, error) {
	if kind != KindDish && kind != KindBeverage {
		return nil, ErrUnknownKind
	}
	seq, err := d.lines(kind)
	if err != nil {
		return nil, err
	}

	var out []DetailLine
	for _, ln := range *seq {
		if ln.CatalogID == "" || ln.Quantity <= 0 {
			continue
		}
		id, err := strconv.ParseInt(ln.CatalogID, 10, 64)
		if err != nil {
			continue
		}
		qty := ln.Quantity
		if qty < 1 {
			qty = 1
		}
		out = append(out, DetailLine{CatalogID: id, Quantity: qty})
	}
	return out, nil
}

// ExtrasText renders the hot-beverage and pastry selections as a single
// human-readable string, e.g.
//
//	Hot beverages: Café x2, Latte x1 | Pastries: Medialuna x1
//
// Sequences with no valid selection are omitted entirely; with none in
// either group the result is the empty string.
func (d *Draft) ExtrasText() string {
	hot := renderExtras(d.HotBeverageLines, catalog.HotBeverages)
	pastries := renderExtras(d.PastryLines, catalog.Pastries)

	var parts []string
	if hot != "" {
		parts = append(parts, "Hot beverages: "+hot)
	}
	if pastries != "" {
		parts = append(parts, "Pastries: "+pastries)
	}
	return strings.Join(parts, " | ")
}

func renderExtras(lines []Line, items []catalog.ExtraItem) string {
	var entries []string
	for _, ln := range lines {
		if ln.CatalogID == "" || ln.Quantity <= 0 {
			continue
		}
		name := catalog.ExtraName(items, ln.CatalogID)
		if name == "" {
			continue
		}
		entries = append(entries, name+" x"+strconv.Itoa(ln.Quantity))
	}
	return strings.Join(entries, ", ")
}

// ComposedNotes joins the free-text notes and the extras text, dropping
// whichever segment is empty. This is the string persisted on the order
// header; extras have no structured persistence path.
func (d *Draft) ComposedNotes() string {
	var parts []string
	if strings.TrimSpace(d.Notes) != "" {
		parts = append(parts, d.Notes)
	}
	if extras := d.ExtrasText(); extras != "" {
		parts = append(parts, extras)
	}
	return strings.TrimSpace(strings.Join(parts, " | "))
}
