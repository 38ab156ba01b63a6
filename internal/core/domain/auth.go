package domain

// AuthReason classifies why a token was rejected. Every reason collapses to
// the same 401 response externally; the distinction exists for logs, metrics
// and tests.
type AuthReason string

const (
	AuthMissingToken   AuthReason = "missing"
	AuthMalformedToken AuthReason = "malformed"
	AuthExpiredToken   AuthReason = "expired"
	AuthBadSignature   AuthReason = "bad_signature"
)

// AuthError is returned by token verification when a credential cannot be
// trusted.
type AuthError struct {
	Reason AuthReason
}

func (e *AuthError) Error() string {
	return "unauthorized: " + string(e.Reason)
}

// Claims is the set of identity fields embedded in a token. The caller's
// email is the one claim the access gate depends on.
type Claims map[string]any

// Email returns the email claim, or "" when absent.
func (c Claims) Email() string {
	s, _ := c["email"].(string)
	return s
}
