package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// CartService implements owner-scoped cart operations. Every read and delete
// is checked against the authenticated caller's email before the store is
// touched.
type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

func (s *CartService) ListByOwner(ctx context.Context, callerEmail, email string) ([]domain.CartEntry, error) {
	if email == "" {
		return []domain.CartEntry{}, nil
	}
	if email != callerEmail {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOwner(ctx, email)
}

func (s *CartService) Add(ctx context.Context, callerEmail string, entry domain.CartEntry) (*ports.InsertResult, error) {
	if entry.Email == "" {
		entry.Email = callerEmail
	}

	res, err := s.repo.Insert(ctx, &entry)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert cart entry")
		return nil, err
	}
	s.logger.Info().Str("email", entry.Email).Str("item", entry.Name).Msg("cart entry added")
	return res, nil
}

func (s *CartService) Delete(ctx context.Context, callerEmail, id string) (*ports.DeleteResult, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Email != callerEmail {
		return nil, domain.ErrForbidden
	}
	return s.repo.DeleteByID(ctx, id)
}
