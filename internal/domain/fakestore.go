package domain

// FakeStoreItem is the raw item shape returned by the Fake Store API.
// The list endpoint omits description; the per-id detail endpoint includes it.
type FakeStoreItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}
