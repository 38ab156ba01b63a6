package ports

import "github.com/bistroboss/bistro-api/internal/core/domain"

// TokenService issues and verifies signed bearer tokens. It never touches the
// store; rejecting bad credentials stays cheap and store-free.
type TokenService interface {
	// Issue signs the given claims with an issued-at and a fixed expiry.
	Issue(claims domain.Claims) (string, error)
	// Verify checks structure, signature and expiry. On failure the error is
	// a *domain.AuthError carrying the rejection reason.
	Verify(token string) (domain.Claims, error)
}
