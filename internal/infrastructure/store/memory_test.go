package store

import (
	"sync"
	"testing"

	"github.com/geerin/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryStore_Defaults(t *testing.T) {
	s := NewMemoryStore(0)

	p := s.Create(domain.CreateProductRequest{Name: "Mug", Price: 9.99, ImageURL: "http://x/y.png"})
	assert.Equal(t, DefaultIDBase, p.ID)
}

func TestCreate_AllocatesSequentialIDs(t *testing.T) {
	s := NewMemoryStore(10000)

	first := s.Create(domain.CreateProductRequest{Name: "Mug", Price: 9.99, ImageURL: "http://x/y.png"})
	second := s.Create(domain.CreateProductRequest{Name: "Plate", Price: 4.5, ImageURL: "http://x/z.png", Category: "kitchen"})

	assert.Equal(t, 10000, first.ID)
	assert.Equal(t, 10001, second.ID)
	assert.True(t, first.IsLocal)
	assert.True(t, second.IsLocal)
	assert.Equal(t, "kitchen", second.Category)
	assert.Equal(t, 2, s.Len())
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	s := NewMemoryStore(10000)

	s.Create(domain.CreateProductRequest{Name: "A", Price: 1, ImageURL: "http://x/a.png"})
	s.Create(domain.CreateProductRequest{Name: "B", Price: 2, ImageURL: "http://x/b.png"})
	s.Create(domain.CreateProductRequest{Name: "C", Price: 3, ImageURL: "http://x/c.png"})

	products := s.List()
	require.Len(t, products, 3)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, "C", products[2].Name)
}

func TestDelete_RemovesAndReturns(t *testing.T) {
	s := NewMemoryStore(10000)

	p := s.Create(domain.CreateProductRequest{Name: "Mug", Price: 9.99, ImageURL: "http://x/y.png"})

	deleted, ok := s.Delete(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, deleted)
	assert.Equal(t, 0, s.Len())

	// Second delete of the same id fails
	_, ok = s.Delete(p.ID)
	assert.False(t, ok)
}

func TestDelete_UnknownID(t *testing.T) {
	s := NewMemoryStore(10000)
	s.Create(domain.CreateProductRequest{Name: "Mug", Price: 9.99, ImageURL: "http://x/y.png"})

	// A remote-range id is simply absent from the store
	_, ok := s.Delete(1)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestDelete_NeverReusesIDs(t *testing.T) {
	s := NewMemoryStore(10000)

	p := s.Create(domain.CreateProductRequest{Name: "Mug", Price: 9.99, ImageURL: "http://x/y.png"})
	s.Delete(p.ID)

	next := s.Create(domain.CreateProductRequest{Name: "Plate", Price: 4.5, ImageURL: "http://x/z.png"})
	assert.Equal(t, p.ID+1, next.ID)
}

func TestUpdate_RewritesFields(t *testing.T) {
	s := NewMemoryStore(10000)

	p := s.Create(domain.CreateProductRequest{Name: "Mug", Price: 9.99, ImageURL: "http://x/y.png", Description: "ceramic"})

	updated, ok := s.Update(p.ID, domain.UpdateProductRequest{Name: "Big Mug", Price: 12.5, ImageURL: "http://x/y2.png", Category: "kitchen"})
	require.True(t, ok)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Big Mug", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "http://x/y2.png", updated.ImageURL)
	assert.Equal(t, "kitchen", updated.Category)
	assert.True(t, updated.IsLocal)
	// Empty description leaves the stored one alone
	assert.Equal(t, "ceramic", updated.Description)

	got, found := s.Get(p.ID)
	require.True(t, found)
	assert.Equal(t, updated, got)
}

func TestUpdate_UnknownID(t *testing.T) {
	s := NewMemoryStore(10000)

	_, ok := s.Update(10000, domain.UpdateProductRequest{Name: "X", Price: 1, ImageURL: "http://x"})
	assert.False(t, ok)
}

func TestConcurrentCreateDelete(t *testing.T) {
	s := NewMemoryStore(10000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := s.Create(domain.CreateProductRequest{Name: "Mug", Price: 9.99, ImageURL: "http://x/y.png"})
			s.Delete(p.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())

	// All ids were handed out exactly once
	next := s.Create(domain.CreateProductRequest{Name: "Last", Price: 1, ImageURL: "http://x/l.png"})
	assert.Equal(t, 10050, next.ID)
}
