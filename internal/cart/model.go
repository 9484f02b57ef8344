package cart

// StorageKey is the fixed key the full cart state lives under. It matches
// the key the web client used in localStorage, so carts written by the old
// frontend load unchanged.
const StorageKey = "deliciae_cart"

// Fallbacks for display fields missing from the catalog at add time.
const (
	DefaultImageRef    = "https://placehold.co/80"
	DefaultSourceLabel = "Deliciae Kitchen"
)

// LineItem is one entry in the cart. Name, price and the display fields
// are captured when the item is added and never re-fetched: the cart shows
// what the user saw at add time even if the catalog changes later.
//
// The JSON tags are the persisted wire shape and must not change.
type LineItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageRef    string  `json:"image"`
	SourceLabel string  `json:"restaurant"`
}

// ItemRef carries the catalog fields a new LineItem captures.
type ItemRef struct {
	ID          int64
	Name        string
	UnitPrice   float64
	ImageRef    string
	SourceLabel string
}

// Snapshot is a read-only view of the cart: the ordered line items plus
// the bill computed from them.
type Snapshot struct {
	Items []LineItem
	Bill  Bill
}
