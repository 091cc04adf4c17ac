package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ParthDhengle/ClipHub/internal/auth"
	"github.com/ParthDhengle/ClipHub/internal/identity"
	"github.com/ParthDhengle/ClipHub/internal/models"
	"github.com/ParthDhengle/ClipHub/internal/repository"
)

type fakeIdentity struct {
	accounts  map[string]*identity.Claims
	verifyErr error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{accounts: map[string]*identity.Claims{}}
}

func (p *fakeIdentity) VerifyToken(_ context.Context, token string) (*identity.Claims, error) {
	if p.verifyErr != nil {
		return nil, p.verifyErr
	}
	claims, ok := p.accounts[token]
	if !ok {
		return nil, identity.ErrForeignToken
	}
	return claims, nil
}

func (p *fakeIdentity) CreateUser(_ context.Context, email, _, name string) (*identity.Claims, error) {
	for _, c := range p.accounts {
		if c.Email == email {
			return nil, identity.ErrEmailTaken
		}
	}
	claims := &identity.Claims{Subject: "uid-" + email, Email: email, Name: name}
	p.accounts["token-"+email] = claims
	return claims, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.Specialty != nil {
		u.Specialty = *upd.Specialty
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) SetPreferences(_ context.Context, id string, prefs []string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Preferences = prefs
	cp := *u
	return &cp, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeIdentity, *fakeUserRepo, *auth.TokenIssuer) {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("service-test-secret", "HS256", time.Minute)
	require.NoError(t, err)
	provider := newFakeIdentity()
	users := newFakeUserRepo()
	return NewAuthService(provider, users, issuer, zap.NewNop()), provider, users, issuer
}

func TestSignup(t *testing.T) {
	svc, _, users, issuer := newTestAuthService(t)

	u, token, err := svc.Signup(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "Ada", u.Name)
	assert.NotNil(t, u.Preferences)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, subject)

	stored, err := users.Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, _, err := svc.Signup(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), "ada@example.com", "other", "Imposter")
	assert.ErrorIs(t, err, identity.ErrEmailTaken)
}

func TestLoginCreatesDirectoryRecordOnFirstSight(t *testing.T) {
	svc, provider, users, issuer := newTestAuthService(t)
	provider.accounts["provider-token"] = &identity.Claims{
		Subject: "uid-9", Email: "mobile@example.com", Name: "Mobile",
	}

	token, u, err := svc.Login(context.Background(), "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-9", u.ID)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-9", subject)

	stored, err := users.Get(context.Background(), "uid-9")
	require.NoError(t, err)
	assert.Equal(t, "mobile@example.com", stored.Email)
}

func TestLoginExistingUserKeepsProfile(t *testing.T) {
	svc, provider, users, _ := newTestAuthService(t)
	provider.accounts["provider-token"] = &identity.Claims{Subject: "uid-9", Email: "stale@example.com"}
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID: "uid-9", Email: "current@example.com", Name: "Kept",
	}))

	_, u, err := svc.Login(context.Background(), "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "current@example.com", u.Email)
	assert.Equal(t, "Kept", u.Name)
}

func TestLoginRejectsForeignToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "some-random-jwt")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
