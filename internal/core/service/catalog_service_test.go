package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

type stubMenuRepo struct {
	items []domain.MenuItem
	calls int
}

func (r *stubMenuRepo) FindAll(context.Context) ([]domain.MenuItem, error) {
	r.calls++
	return r.items, nil
}

type stubReviewRepo struct {
	reviews []domain.Review
	calls   int
}

func (r *stubReviewRepo) FindAll(context.Context) ([]domain.Review, error) {
	r.calls++
	return r.reviews, nil
}

type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, collection string, v any) (bool, error) {
	b, ok := c.data[collection]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, v)
}

func (c *memoryCache) Set(_ context.Context, collection string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[collection] = b
	return nil
}

func TestCatalogService_Menu_CacheAside(t *testing.T) {
	menu := &stubMenuRepo{items: []domain.MenuItem{{ID: "m1", Name: "pasta", Price: 12.5}}}
	cache := newMemoryCache()
	svc := NewCatalogService(menu, &stubReviewRepo{}, cache, zerolog.Nop())

	items, err := svc.Menu(context.Background())
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "pasta" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if menu.calls != 1 {
		t.Fatalf("expected one store read, got %d", menu.calls)
	}

	// Second read within TTL is served from the cache.
	items, err = svc.Menu(context.Background())
	if err != nil {
		t.Fatalf("cached menu failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "pasta" {
		t.Fatalf("unexpected cached items: %+v", items)
	}
	if menu.calls != 1 {
		t.Fatalf("expected cache hit, store read %d times", menu.calls)
	}
}

func TestCatalogService_Reviews_CacheAside(t *testing.T) {
	reviews := &stubReviewRepo{reviews: []domain.Review{{ID: "r1", Name: "Ben", Rating: 5}}}
	cache := newMemoryCache()
	svc := NewCatalogService(&stubMenuRepo{}, reviews, cache, zerolog.Nop())

	if _, err := svc.Reviews(context.Background()); err != nil {
		t.Fatalf("reviews failed: %v", err)
	}
	if _, err := svc.Reviews(context.Background()); err != nil {
		t.Fatalf("cached reviews failed: %v", err)
	}
	if reviews.calls != 1 {
		t.Fatalf("expected cache hit, store read %d times", reviews.calls)
	}
}

func TestCatalogService_NilCache(t *testing.T) {
	menu := &stubMenuRepo{items: []domain.MenuItem{{ID: "m1", Name: "pasta"}}}
	svc := NewCatalogService(menu, &stubReviewRepo{}, nil, zerolog.Nop())

	for i := 0; i < 2; i++ {
		items, err := svc.Menu(context.Background())
		if err != nil {
			t.Fatalf("menu failed: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("unexpected items: %+v", items)
		}
	}
	if menu.calls != 2 {
		t.Fatalf("expected direct store reads without cache, got %d", menu.calls)
	}
}
