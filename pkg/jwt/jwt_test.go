package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, expiration time.Duration) *Service {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewTestService(key, "roam-test", expiration)
}

func TestSignAndValidate_RoundTrip(t *testing.T) {
	svc := testService(t, time.Hour)

	token, err := svc.Sign(Claims{UserID: "user:alice", Username: "alice"})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user:alice", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "roam-test", claims.Issuer)
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := testService(t, time.Hour)

	token, err := svc.Sign(Claims{
		UserID:    "user:alice",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_WrongKey(t *testing.T) {
	signer := testService(t, time.Hour)
	verifier := testService(t, time.Hour)

	token, err := signer.Sign(Claims{UserID: "user:alice"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidate_WrongIssuer(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	signer := NewTestService(key, "someone-else", time.Hour)
	verifier := NewTestService(key, "roam-test", time.Hour)

	token, err := signer.Sign(Claims{UserID: "user:alice"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MalformedToken(t *testing.T) {
	svc := testService(t, time.Hour)

	for _, token := range []string{"", "abc", "a.b", "a.b.c.d"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestSign_RequiresPrivateKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	svc := &Service{publicKey: &key.PublicKey, issuer: "roam-test"}
	_, err = svc.Sign(Claims{UserID: "user:alice"})
	assert.ErrorIs(t, err, ErrInvalidKey)
}
