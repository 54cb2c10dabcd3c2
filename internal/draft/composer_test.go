package draft_test

import (
	"testing"

	"github.com/pampa-pos/dashboard/internal/draft"
	"github.com/pampa-pos/dashboard/internal/model"
)

func TestNewDraftStartsWithOneBlankSlotPerKind(t *testing.T) {
	d := draft.New()

	for _, kind := range draft.Kinds {
		lines, err := d.Lines(kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if len(lines) != 1 {
			t.Fatalf("%s: got %d slots, want 1", kind, len(lines))
		}
		if lines[0].CatalogID != "" || lines[0].Quantity != 1 {
			t.Errorf("%s: blank slot is %+v, want empty id and qty 1", kind, lines[0])
		}
	}

	if d.Type != model.TypeDelivery {
		t.Errorf("type: got %q, want %q", d.Type, model.TypeDelivery)
	}
	if !d.AutoPrint {
		t.Error("auto-print should default on for new orders")
	}
}

func TestNewForEditCopiesHeaderAndDisablesAutoPrint(t *testing.T) {
	o := model.Order{ID: 9, Customer: "Ana", Type: model.TypeThirdParty, Notes: "sin cebolla"}
	d := draft.NewForEdit(o)

	if d.EditingID != 9 {
		t.Errorf("editing id: got %d, want 9", d.EditingID)
	}
	if d.Customer != "Ana" || d.Type != model.TypeThirdParty || d.Notes != "sin cebolla" {
		t.Errorf("header not copied: %+v", d)
	}
	if d.AutoPrint {
		t.Error("auto-print should default off when editing")
	}
}

func TestAddAndRemoveLine(t *testing.T) {
	d := draft.New()

	if err := d.AddLine(draft.KindDish); err != nil {
		t.Fatalf("add line: %v", err)
	}
	lines, _ := d.Lines(draft.KindDish)
	if len(lines) != 2 {
		t.Fatalf("got %d slots, want 2", len(lines))
	}

	if err := d.RemoveLine(draft.KindDish, 0); err != nil {
		t.Fatalf("remove line: %v", err)
	}
	lines, _ = d.Lines(draft.KindDish)
	if len(lines) != 1 {
		t.Fatalf("got %d slots, want 1", len(lines))
	}
}

func TestRemoveSoleSlotIsNoOp(t *testing.T) {
	for _, kind := range draft.Kinds {
		d := draft.New()
		if err := d.RemoveLine(kind, 0); err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		lines, _ := d.Lines(kind)
		if len(lines) != 1 {
			t.Errorf("%s: sequence dropped below one slot", kind)
		}
	}
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	d := draft.New()
	d.AddLine(draft.KindBeverage)

	if err := d.RemoveLine(draft.KindBeverage, 5); err != nil {
		t.Fatalf("remove out of range: %v", err)
	}
	lines, _ := d.Lines(draft.KindBeverage)
	if len(lines) != 2 {
		t.Fatalf("got %d slots, want 2", len(lines))
	}
}

func TestUpdateLineTouchesSingleField(t *testing.T) {
	d := draft.New()
	d.AddLine(draft.KindDish)

	id := "7"
	if err := d.UpdateLine(draft.KindDish, 0, &id, nil); err != nil {
		t.Fatalf("update id: %v", err)
	}
	qty := 3
	if err := d.UpdateLine(draft.KindDish, 0, nil, &qty); err != nil {
		t.Fatalf("update qty: %v", err)
	}

	lines, _ := d.Lines(draft.KindDish)
	if lines[0].CatalogID != "7" || lines[0].Quantity != 3 {
		t.Errorf("slot 0: got %+v, want id 7 qty 3", lines[0])
	}
	if lines[1].CatalogID != "" || lines[1].Quantity != 1 {
		t.Errorf("slot 1 was touched: %+v", lines[1])
	}
}

func TestUpdateLineUnknownKind(t *testing.T) {
	d := draft.New()
	id := "1"
	if err := d.UpdateLine("combo", 0, &id, nil); err != draft.ErrUnknownKind {
		t.Fatalf("got %v, want ErrUnknownKind", err)
	}
}

func TestDetailLinesFiltersAndCoerces(t *testing.T) {
	d := draft.New()
	set := func(idx int, id string, qty int) {
		t.Helper()
		if idx > 0 {
			d.AddLine(draft.KindDish)
		}
		if err := d.UpdateLine(draft.KindDish, idx, &id, &qty); err != nil {
			t.Fatalf("set slot %d: %v", idx, err)
		}
	}

	set(0, "7", 2)   // valid
	set(1, "", 4)    // no selection
	set(2, "8", 0)   // non-positive qty
	set(3, "9", -1)  // negative qty
	set(4, "x", 2)   // unparsable id
	set(5, "10", 1)  // valid

	lines, err := d.DetailLines(draft.KindDish)
	if err != nil {
		t.Fatalf("detail lines: %v", err)
	}
	want := []draft.DetailLine{{CatalogID: 7, Quantity: 2}, {CatalogID: 10, Quantity: 1}}
	if len(lines) != len(want) {
		t.Fatalf("got %d detail lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestDetailLinesRejectsExtraKinds(t *testing.T) {
	d := draft.New()
	if _, err := d.DetailLines(draft.KindHotBeverage); err != draft.ErrUnknownKind {
		t.Fatalf("hot-beverage: got %v, want ErrUnknownKind", err)
	}
	if _, err := d.DetailLines(draft.KindPastry); err != draft.ErrUnknownKind {
		t.Fatalf("pastry: got %v, want ErrUnknownKind", err)
	}
}

func TestExtrasText(t *testing.T) {
	d := draft.New()

	cafe := "cafe"
	two := 2
	d.UpdateLine(draft.KindHotBeverage, 0, &cafe, &two)

	medialuna := "medialuna"
	one := 1
	d.UpdateLine(draft.KindPastry, 0, &medialuna, &one)

	got := d.ExtrasText()
	want := "Hot beverages: Café x2 | Pastries: Medialuna x1"
	if got != want {
		t.Fatalf("extras text:\n got %q\nwant %q", got, want)
	}
}

func TestExtrasTextJoinsSameKindWithComma(t *testing.T) {
	d := draft.New()

	cafe := "cafe"
	two := 2
	d.UpdateLine(draft.KindHotBeverage, 0, &cafe, &two)
	d.AddLine(draft.KindHotBeverage)
	latte := "latte"
	one := 1
	d.UpdateLine(draft.KindHotBeverage, 1, &latte, &one)

	got := d.ExtrasText()
	want := "Hot beverages: Café x2, Latte x1"
	if got != want {
		t.Fatalf("extras text:\n got %q\nwant %q", got, want)
	}
}

func TestExtrasTextEmptyWhenNothingSelected(t *testing.T) {
	d := draft.New()
	if got := d.ExtrasText(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}

	// A selection with zero quantity still renders nothing.
	te := "te"
	zero := 0
	d.UpdateLine(draft.KindHotBeverage, 0, &te, &zero)
	if got := d.ExtrasText(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestComposedNotes(t *testing.T) {
	tests := []struct {
		name   string
		notes  string
		extras bool
		want   string
	}{
		{name: "notes and extras", notes: "sin cebolla", extras: true, want: "sin cebolla | Hot beverages: Café x1"},
		{name: "notes only", notes: "sin cebolla", extras: false, want: "sin cebolla"},
		{name: "extras only", notes: "", extras: true, want: "Hot beverages: Café x1"},
		{name: "neither", notes: "", extras: false, want: ""},
		{name: "blank notes dropped", notes: "   ", extras: true, want: "Hot beverages: Café x1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft.New()
			d.Notes = tt.notes
			if tt.extras {
				cafe := "cafe"
				one := 1
				d.UpdateLine(draft.KindHotBeverage, 0, &cafe, &one)
			}
			if got := d.ComposedNotes(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
