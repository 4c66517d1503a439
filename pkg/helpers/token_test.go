package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pommyhq/accounts-api/pkg/apperr"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenManager_EmptySecret(t *testing.T) {
	m := NewTokenManager("", time.Hour)

	_, err := m.Issue("user-123")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidSecretKey))

	_, err = m.Verify("anything")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidSecretKey))
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("user-123")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidOrExpiredToken))
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidOrExpiredToken))
}

func TestTokenManager_Verify_Malformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	for _, tok := range []string{"garbage", "a.b.c", ""} {
		_, err := m.Verify(tok)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidOrExpiredToken), "token %q", tok)
	}
}

func TestTokenManager_Verify_Tampered(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-123")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Verify(tampered)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidOrExpiredToken))
}

func TestTokenManager_Verify_MissingUserIDClaim(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	// A structurally valid, correctly signed token without a userId claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := raw.SignedString(m.Secret)
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidTokenPayload))
}

func TestTokenManager_Verify_RejectsNonHMAC(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	// alg=none style tokens must never verify.
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-123"})
	signed, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidOrExpiredToken))
}
