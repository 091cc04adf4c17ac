package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestTokenIssuerExpiry(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	token, err := issuer.IssueWithTTL("user-123", -time.Second)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuerMalformed(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}

func TestTokenIssuerWrongSecret(t *testing.T) {
	issuer, err := NewTokenIssuer("secret-one", "HS256", time.Minute)
	require.NoError(t, err)
	other, err := NewTokenIssuer("secret-two", "HS256", time.Minute)
	require.NoError(t, err)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenIssuerAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		issuer, err := NewTokenIssuer("test-secret", alg, time.Minute)
		require.NoError(t, err, alg)

		token, err := issuer.Issue("user-123")
		require.NoError(t, err, alg)
		subject, err := issuer.Verify(token)
		require.NoError(t, err, alg)
		assert.Equal(t, "user-123", subject)
	}

	_, err := NewTokenIssuer("test-secret", "RS256", time.Minute)
	assert.Error(t, err)
	_, err = NewTokenIssuer("test-secret", "nope", time.Minute)
	assert.Error(t, err)
}
