package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// UserRepository defines persistence for user records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*InsertResult, error)
	// PromoteByID sets the role of the record identified by id to admin.
	PromoteByID(ctx context.Context, id string) (*UpdateResult, error)
}
