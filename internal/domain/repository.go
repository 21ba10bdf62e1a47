package domain

import "context"

// CatalogClient defines the interface for the remote read-only product catalog
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]FakeStoreItem, error)
	GetProduct(ctx context.Context, id int) (*FakeStoreItem, error)
}

// LocalStore defines the interface for the process-local product store.
// Implementations must serialize concurrent callers; contents are ephemeral
// and reset on restart.
type LocalStore interface {
	List() []Product
	Get(id int) (Product, bool)
	Create(req CreateProductRequest) Product
	Update(id int, req UpdateProductRequest) (Product, bool)
	Delete(id int) (Product, bool)
	Len() int
}
