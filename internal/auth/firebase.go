package auth

import (
	"context"
	"fmt"

	"smart-deals-server/internal/marketerrors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// IDTokenVerifier is the slice of the Firebase auth client this package
// depends on.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier implements the federated-token strategy by delegating
// verification to the identity provider's SDK.
type FirebaseVerifier struct {
	client IDTokenVerifier
}

// NewFirebaseVerifier initializes the Firebase app from a service-account
// credentials file (or application-default credentials when the path is
// empty) and wraps its auth client.
func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("auth: initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: obtaining firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// NewFirebaseVerifierWithClient wraps an existing verifier client. Used in tests.
func NewFirebaseVerifierWithClient(client IDTokenVerifier) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// Verify delegates to the provider and returns the token's email claim.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	info, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return Identity{}, fmt.Errorf("auth: id token verification failed: %w", marketerrors.ErrUnauthorized)
	}
	email, _ := info.Claims["email"].(string)
	if email == "" {
		return Identity{}, fmt.Errorf("auth: id token has no email claim: %w", marketerrors.ErrUnauthorized)
	}
	return Identity{Email: email}, nil
}
