package domain

// Product is the canonical catalog item served to clients. Remote and local
// items are normalized into this one shape; IsLocal tags the origin so callers
// never have to infer it from the id range.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	IsLocal     bool    `json:"isLocal"`
	Description string  `json:"description,omitempty"`
}

// CreateProductRequest carries the fields accepted when adding a local product
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateProductRequest carries the fields accepted when updating a local
// product. All required create fields stay required on update.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}
