package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ParthDhengle/ClipHub/internal/identity"
	"github.com/ParthDhengle/ClipHub/internal/models"
	"github.com/ParthDhengle/ClipHub/internal/repository"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Caller is the resolved identity behind a request. User is nil when the
// identity is valid but no directory record exists yet (a just-signed-up
// provider account acting before its profile write landed).
type Caller struct {
	ID    string
	Email string
	Name  string
	User  *models.User
}

// Stored reports whether the caller has a directory record.
func (c *Caller) Stored() bool { return c.User != nil }

// Directory is the user lookup the resolver performs after verification.
type Directory interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// TokenVerifier checks a locally issued token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Resolver turns a bearer credential into a Caller. Two verification
// strategies are tried in fixed order: the identity provider first, then the
// local issuer, the latter only when the provider reports the token is not
// its own. Every failure collapses into ErrUnauthenticated so a malformed or
// replayed token can never surface as a server error.
type Resolver struct {
	provider identity.Provider
	verifier TokenVerifier
	users    Directory
	log      *zap.Logger
}

func NewResolver(provider identity.Provider, verifier TokenVerifier, users Directory, log *zap.Logger) *Resolver {
	return &Resolver{provider: provider, verifier: verifier, users: users, log: log}
}

// Resolve verifies the credential and loads the caller's profile. Results
// are never cached; every request re-verifies.
func (r *Resolver) Resolve(ctx context.Context, bearer string) (*Caller, error) {
	if bearer == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := r.provider.VerifyToken(ctx, bearer)
	if err == nil {
		caller := &Caller{ID: claims.Subject, Email: claims.Email, Name: claims.Name}
		if u, lookupErr := r.lookup(ctx, claims.Subject); lookupErr == nil {
			caller.User = u
			caller.Email = u.Email
			caller.Name = u.Name
		}
		return caller, nil
	}
	if !errors.Is(err, identity.ErrForeignToken) {
		r.log.Debug("provider token rejected", zap.Error(err))
		return nil, ErrUnauthenticated
	}

	subject, err := r.verifier.Verify(bearer)
	if err != nil {
		r.log.Debug("local token rejected", zap.Error(err))
		return nil, ErrUnauthenticated
	}
	caller := &Caller{ID: subject}
	if u, lookupErr := r.lookup(ctx, subject); lookupErr == nil {
		caller.User = u
		caller.Email = u.Email
		caller.Name = u.Name
	}
	return caller, nil
}

// lookup reads the directory; a missing record is expected, anything else is
// logged and treated the same so the caller still resolves from claims alone.
func (r *Resolver) lookup(ctx context.Context, id string) (*models.User, error) {
	u, err := r.users.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			r.log.Warn("directory lookup failed", zap.String("user_id", id), zap.Error(err))
		}
		return nil, err
	}
	return u, nil
}
