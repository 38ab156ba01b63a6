package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// CartRepository defines persistence for cart entries.
type CartRepository interface {
	FindByOwner(ctx context.Context, email string) ([]domain.CartEntry, error)
	FindByID(ctx context.Context, id string) (*domain.CartEntry, error)
	Insert(ctx context.Context, entry *domain.CartEntry) (*InsertResult, error)
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}
