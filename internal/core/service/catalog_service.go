package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// CatalogService serves the read-only menu and review listings through a
// cache-aside layer. The cache is optional: a nil cache falls back to direct
// store reads, and cache failures are logged but never fail a request.
type CatalogService struct {
	menu    ports.MenuRepository
	reviews ports.ReviewRepository
	cache   ports.CatalogCache
	logger  zerolog.Logger
}

func NewCatalogService(menu ports.MenuRepository, reviews ports.ReviewRepository, cache ports.CatalogCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{menu: menu, reviews: reviews, cache: cache, logger: logger}
}

func (s *CatalogService) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	var cached []domain.MenuItem
	if s.cacheGet(ctx, "menu", &cached) {
		return cached, nil
	}

	items, err := s.menu.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "menu", items)
	return items, nil
}

func (s *CatalogService) Reviews(ctx context.Context) ([]domain.Review, error) {
	var cached []domain.Review
	if s.cacheGet(ctx, "reviews", &cached) {
		return cached, nil
	}

	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "reviews", reviews)
	return reviews, nil
}

func (s *CatalogService) cacheGet(ctx context.Context, collection string, v any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, collection, v)
	if err != nil {
		s.logger.Warn().Err(err).Str("collection", collection).Msg("catalog cache read failed")
		return false
	}
	return ok
}

func (s *CatalogService) cacheSet(ctx context.Context, collection string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, collection, v); err != nil {
		s.logger.Warn().Err(err).Str("collection", collection).Msg("catalog cache write failed")
	}
}
