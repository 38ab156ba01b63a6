package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService signs and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs the given claims together with iat and exp. Caller claims win
// no conflicts: the registered time claims always overwrite theirs.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(s.ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}

// Verify checks structure, signature and expiry, returning the decoded
// claims. Failures come back as *domain.AuthError with a distinct reason.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	if token == "" {
		return nil, &domain.AuthError{Reason: domain.AuthMissingToken}
	}

	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, &domain.AuthError{Reason: domain.AuthExpiredToken}
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, &domain.AuthError{Reason: domain.AuthBadSignature}
		default:
			return nil, &domain.AuthError{Reason: domain.AuthMalformedToken}
		}
	}
	if !tkn.Valid {
		return nil, &domain.AuthError{Reason: domain.AuthMalformedToken}
	}

	return domain.Claims(mc), nil
}
