package fakestore

import "github.com/geerin/backend/internal/domain"

// MapToProduct converts a raw Fake Store item to the canonical Product shape.
// Upstream fields are renamed (title→name, image→imageUrl) and the origin is
// tagged as remote.
func MapToProduct(item *domain.FakeStoreItem) domain.Product {
	return domain.Product{
		ID:          item.ID,
		Name:        item.Title,
		Price:       item.Price,
		ImageURL:    item.Image,
		Category:    item.Category,
		IsLocal:     false,
		Description: item.Description,
	}
}

// MapToProducts converts a remote listing, preserving upstream order
func MapToProducts(items []domain.FakeStoreItem) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for i := range items {
		products = append(products, MapToProduct(&items[i]))
	}
	return products
}
