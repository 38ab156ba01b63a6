package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

type CartService interface {
	// ListByOwner returns the entries owned by email. An empty email yields
	// an empty list; an email other than callerEmail yields ErrForbidden.
	ListByOwner(ctx context.Context, callerEmail, email string) ([]domain.CartEntry, error)
	Add(ctx context.Context, callerEmail string, entry domain.CartEntry) (*InsertResult, error)
	// Delete removes the entry by id after checking it belongs to callerEmail.
	Delete(ctx context.Context, callerEmail, id string) (*DeleteResult, error)
}
