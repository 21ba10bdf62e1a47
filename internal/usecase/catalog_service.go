package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geerin/backend/internal/domain"
	"github.com/geerin/backend/internal/infrastructure/fakestore"
)

// FallbackDescription is shown when a product carries no description and the
// detail lookup cannot supply one.
const FallbackDescription = "No description available."

// CatalogService merges the remote read-only catalog with the local product
// store and mediates all local-product mutation.
type CatalogService struct {
	client domain.CatalogClient
	store  domain.LocalStore
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(client domain.CatalogClient, store domain.LocalStore) *CatalogService {
	return &CatalogService{
		client: client,
		store:  store,
	}
}

// ListProducts returns the unified catalog: remote products in upstream
// order, then local products in insertion order. A remote fetch failure fails
// the whole listing; partial data is never returned.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	items, err := s.client.ListProducts(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	products := fakestore.MapToProducts(items)
	return append(products, s.store.List()...), nil
}

// CreateLocalProduct validates req and stores a new local-origin product with
// a freshly allocated id
func (s *CatalogService) CreateLocalProduct(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	if err := validateFields(req.Name, req.Price, req.ImageURL); err != nil {
		return domain.Product{}, err
	}
	return s.store.Create(req), nil
}

// UpdateLocalProduct validates req and rewrites the stored local product.
// Remote ids are never present in the store, so updating one fails with
// ErrProductNotFound.
func (s *CatalogService) UpdateLocalProduct(ctx context.Context, id int, req domain.UpdateProductRequest) (domain.Product, error) {
	if err := validateFields(req.Name, req.Price, req.ImageURL); err != nil {
		return domain.Product{}, err
	}

	p, ok := s.store.Update(id, req)
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

// DeleteLocalProduct removes and returns the local product with the given id.
// Deletability is decided by store membership, never by id range: a remote id
// fails with ErrProductNotFound and leaves the store untouched.
func (s *CatalogService) DeleteLocalProduct(ctx context.Context, id int) (domain.Product, error) {
	p, ok := s.store.Delete(id)
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

// GetProductDetail resolves a product together with its description. Local
// products use their stored description; remote products fetch the per-id
// detail from the upstream. An empty description degrades to the fixed
// fallback text. Results are not cached across calls.
func (s *CatalogService) GetProductDetail(ctx context.Context, id int) (domain.Product, error) {
	if p, ok := s.store.Get(id); ok {
		if p.Description == "" {
			p.Description = FallbackDescription
		}
		return p, nil
	}

	item, err := s.client.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	p := fakestore.MapToProduct(item)
	if p.Description == "" {
		p.Description = FallbackDescription
	}
	return p, nil
}

// validateFields checks the required create/update fields. Price must be
// present and positive; zero is treated as absent, matching the add form.
func validateFields(name string, price float64, imageURL string) error {
	var missing []string
	if strings.TrimSpace(name) == "" {
		missing = append(missing, "name")
	}
	if price <= 0 {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(imageURL) == "" {
		missing = append(missing, "imageUrl")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
