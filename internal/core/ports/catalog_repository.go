package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

type MenuRepository interface {
	FindAll(ctx context.Context) ([]domain.MenuItem, error)
}

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]domain.Review, error)
}

// CatalogCache holds serialized catalog listings with a TTL. Get reports
// whether the key was present; a miss is not an error.
type CatalogCache interface {
	Get(ctx context.Context, collection string, v any) (bool, error)
	Set(ctx context.Context, collection string, v any) error
}
