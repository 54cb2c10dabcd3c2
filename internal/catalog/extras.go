package catalog

// ExtraItem is a fixed, unpriced entry used only to generate notes text.
// Extras never become detail records on the backend.
type ExtraItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HotBeverages is the fixed hot-beverage extra catalog.
var HotBeverages = []ExtraItem{
	{ID: "cafe", Name: "Café"},
	{ID: "cappuccino", Name: "Capuchino"},
	{ID: "latte", Name: "Latte"},
	{ID: "te", Name: "Té"},
}

// Pastries is the fixed pastry extra catalog.
var Pastries = []ExtraItem{
	{ID: "medialuna", Name: "Medialuna"},
	{ID: "torta-choco", Name: "Torta de chocolate"},
	{ID: "tarta-fruta", Name: "Tarta de frutas"},
	{ID: "budin", Name: "Budín"},
}

// ExtraName resolves an id within a fixed extra catalog. Unknown ids
// resolve to an empty name.
func ExtraName(items []ExtraItem, id string) string {
	for _, it := range items {
		if it.ID == id {
			return it.Name
		}
	}
	return ""
}
