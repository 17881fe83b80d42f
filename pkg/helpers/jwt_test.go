package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("super-secret"), TTL: 24 * time.Hour}

	tok, exp, err := m.Generate("user-123", "alice@x.com", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestJWTParse_Expired(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("secret"), TTL: -time.Second}
	tok, _, err := m.Generate("u1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = m.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTParse_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := &JWTManager{Secret: []byte("right-secret"), TTL: time.Hour}
	tok, _, err := issuer.Generate("u2", "a@b.c", "A")
	require.NoError(t, err)

	verifier := &JWTManager{Secret: []byte("wrong-secret"), TTL: time.Hour}
	_, err = verifier.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTParse_Malformed(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("k"), TTL: time.Hour}
	_, err := m.Parse("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Expiry is a hard boundary: valid just before, invalid just after.
func TestJWTExpiryBoundary(t *testing.T) {
	t.Parallel()

	stillValid := &JWTManager{Secret: []byte("k"), TTL: time.Minute}
	tok, _, err := stillValid.Generate("u3", "a@b.c", "A")
	require.NoError(t, err)
	_, err = stillValid.Parse(tok)
	assert.NoError(t, err)

	justExpired := &JWTManager{Secret: []byte("k"), TTL: -time.Millisecond}
	tok, _, err = justExpired.Generate("u3", "a@b.c", "A")
	require.NoError(t, err)
	_, err = justExpired.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
