package auth

import (
	"context"
	"fmt"
	"time"

	"smart-deals-server/internal/marketerrors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed lifetime of self-issued tokens. Expiry is the only
// invalidation path; there is no revocation.
const tokenTTL = time.Hour

// TokenService implements the self-issued token strategy: it mints HS256
// tokens over caller-supplied claims and verifies them against the same
// shared secret.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the supplied identity claims with a 1-hour expiry.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	return s.IssueWithTTL(claims, tokenTTL)
}

// IssueWithTTL signs a token with a custom lifetime. Used in tests.
func (s *TokenService) IssueWithTTL(claims map[string]any, ttl time.Duration) (string, error) {
	c := jwt.MapClaims{}
	for k, v := range claims {
		c[k] = v
	}
	now := time.Now()
	c["iat"] = now.Unix()
	c["exp"] = now.Add(ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a self-issued token and
// returns the embedded email claim.
func (s *TokenService) Verify(ctx context.Context, tokenStr string) (Identity, error) {
	token, err := jwt.Parse(
		tokenStr,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("auth: token verification failed: %w", marketerrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("auth: unexpected claims type: %w", marketerrors.ErrUnauthorized)
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return Identity{}, fmt.Errorf("auth: token has no email claim: %w", marketerrors.ErrUnauthorized)
	}
	return Identity{Email: email}, nil
}
