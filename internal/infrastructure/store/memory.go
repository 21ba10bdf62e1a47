package store

import (
	"sync"

	"github.com/geerin/backend/internal/domain"
)

// DefaultIDBase is the first id handed out by a store when no base is
// configured. It sits well above the ids the remote demo catalog uses, so the
// two id spaces never collide.
const DefaultIDBase = 10000

// MemoryStore is a mutex-guarded in-memory product store. Products live for
// the lifetime of the process only; listing preserves insertion order and ids
// are allocated from a monotonic sequence that never reuses deleted ids.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int
	order  []int
	items  map[int]domain.Product
}

// NewMemoryStore creates an empty store allocating ids from idBase upward
func NewMemoryStore(idBase int) *MemoryStore {
	if idBase <= 0 {
		idBase = DefaultIDBase
	}
	return &MemoryStore{
		nextID: idBase,
		items:  make(map[int]domain.Product),
	}
}

// List returns all stored products in insertion order
func (s *MemoryStore) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.items[id])
	}
	return products
}

// Get returns the product with the given id, if present
func (s *MemoryStore) Get(id int) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	return p, ok
}

// Create allocates the next id and stores a local-origin product built from
// req. Validation happens in the usecase layer; the store only owns identity
// and ordering.
func (s *MemoryStore) Create(req domain.CreateProductRequest) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Product{
		ID:          s.nextID,
		Name:        req.Name,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		IsLocal:     true,
		Description: req.Description,
	}
	s.nextID++

	s.items[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}

// Update rewrites the stored product with the given id. Returns false when
// the id is not present.
func (s *MemoryStore) Update(id int, req domain.UpdateProductRequest) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	if !ok {
		return domain.Product{}, false
	}

	p.Name = req.Name
	p.Price = req.Price
	p.ImageURL = req.ImageURL
	p.Category = req.Category
	if req.Description != "" {
		p.Description = req.Description
	}
	s.items[id] = p
	return p, true
}

// Delete removes and returns the product with the given id. Returns false
// when the id is not present, which covers remote ids as well: they are never
// stored here.
func (s *MemoryStore) Delete(id int) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	if !ok {
		return domain.Product{}, false
	}

	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return p, true
}

// Len returns the number of stored products
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
