// Package types defines core domain types for the Chatur Bazar terminal.
//
//nolint:revive // types is a common Go package naming convention
package types

// DefaultOpeningStock is the opening stock for products created at the till
// (unknown scan code followed by a create prompt).
const DefaultOpeningStock = 100

// Product is a catalog entry. Stock is mutated only by the transaction
// engine; everything else only by catalog edits.
type Product struct {
	// ID is an opaque unique identifier.
	ID string `json:"id" yaml:"id"`
	// Name is the display name shown on the catalog grid.
	Name string `json:"name" yaml:"name"`
	// Price is the unit price in the configured currency. Never negative.
	Price float64 `json:"price" yaml:"price"`
	// Category is a free-form grouping label.
	Category string `json:"category" yaml:"category"`
	// Stock is the on-hand unit count. Never negative.
	Stock int `json:"stock" yaml:"stock"`
	// ScanCode is the keyboard-wedge scanner code, unique when present.
	ScanCode string `json:"scanCode,omitempty" yaml:"scan_code,omitempty"`
	// Hotkey is a single digit 1-9 bound to this product, unique when present.
	Hotkey string `json:"hotkey,omitempty" yaml:"hotkey,omitempty"`
}

// CartLine is one line of the open cart. UnitPrice is captured at add time,
// so a catalog price edit does not retroactively alter an open cart.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line total.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Snapshot is the persisted session state handed to the store verbatim
// after every mutation. Last write wins; no delta writes.
type Snapshot struct {
	Products []Product `json:"products"`
	Revenue  float64   `json:"revenue"`
}

// Clone returns a deep copy. Stores and adapters receive clones so the
// engine's state can never be written from outside its operations.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Products: make([]Product, len(s.Products)),
		Revenue:  s.Revenue,
	}
	copy(out.Products, s.Products)
	return out
}

// DefaultCatalog is the seed inventory used when the store has no
// persisted snapshot for this terminal.
func DefaultCatalog() []Product {
	return []Product{
		{ID: "1", Name: "Maggi Noodles", Price: 14, Category: "Food", Stock: 50, ScanCode: "89010588", Hotkey: "1"},
		{ID: "2", Name: "Coke (500ml)", Price: 40, Category: "Drink", Stock: 24, ScanCode: "54490000", Hotkey: "2"},
		{ID: "3", Name: "Good Day Biscuit", Price: 20, Category: "Food", Stock: 5, ScanCode: "89010633", Hotkey: "3"},
		{ID: "4", Name: "Dettol Soap", Price: 35, Category: "Household", Stock: 100, ScanCode: "89010222", Hotkey: "4"},
		{ID: "5", Name: "Dairy Milk", Price: 10, Category: "Food", Stock: 2, ScanCode: "76222018", Hotkey: "5"},
	}
}
