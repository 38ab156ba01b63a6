package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// RegisterResult reports the outcome of an idempotent registration. Existed
// means a record with the same email was already present and no write
// occurred; Insert is nil in that case.
type RegisterResult struct {
	Existed bool
	Insert  *InsertResult
}

type UserService interface {
	Register(ctx context.Context, user domain.User) (*RegisterResult, error)
	List(ctx context.Context) ([]domain.User, error)
	// AdminStatus reports whether the record for email holds the admin role.
	// When email differs from callerEmail it answers false without touching
	// the store, shielding other users' status from probing.
	AdminStatus(ctx context.Context, callerEmail, email string) (bool, error)
	Promote(ctx context.Context, id string) (*UpdateResult, error)
}
