package identity

import (
	"context"
	"errors"
)

var (
	// ErrForeignToken means the credential is not one of the provider's own
	// tokens. The auth resolver uses it to fall through to the local verifier.
	ErrForeignToken = errors.New("token not issued by identity provider")
	ErrEmailTaken   = errors.New("email already registered")
)

// Claims are the profile attributes the provider attaches to an identity.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Provider wraps the external identity service.
type Provider interface {
	// VerifyToken checks a provider-issued bearer credential and returns the
	// caller's claims. Returns ErrForeignToken when the credential is not a
	// provider token at all.
	VerifyToken(ctx context.Context, token string) (*Claims, error)

	// CreateUser registers a new account with the provider. The returned
	// Subject is the canonical, immutable user id.
	CreateUser(ctx context.Context, email, password, name string) (*Claims, error)
}
