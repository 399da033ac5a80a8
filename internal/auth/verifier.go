package auth

import (
	"context"
	"strings"
)

// IdentityContextKey is the request-context key under which middleware
// stores the verified caller email for handlers.
const IdentityContextKey = "token_email"

// Identity is a verified caller identity.
type Identity struct {
	Email string
}

// CredentialVerifier validates an inbound bearer credential and extracts
// the caller's verified identity. Implementations must reject with an
// error wrapping marketerrors.ErrUnauthorized without disclosing the cause.
type CredentialVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// BearerToken extracts the token segment from an Authorization header value
// of shape "Bearer <token>". A missing header or missing segment both
// report false; the caller treats either the same as a failed verification.
func BearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
