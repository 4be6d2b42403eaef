package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// issueWithExpiry mints a token with an arbitrary validity window so expiry
// behavior can be tested without waiting.
func issueWithExpiry(t *testing.T, secret, userID string, validity time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("super-secret")

	token, err := svc.IssueToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret")

	token := issueWithExpiry(t, "secret", "u1", -1*time.Second)

	_, err := svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_ValidJustBeforeExpiry(t *testing.T) {
	svc := NewTokenService("secret")

	// One second of validity left: still accepted.
	token := issueWithExpiry(t, "secret", "u1", time.Second)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token := issueWithExpiry(t, "right-secret", "u2", time.Hour)

	_, err := NewTokenService("wrong-secret").VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	_, err := NewTokenService("k").VerifyToken("not.a.jwt")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_MissingUserID(t *testing.T) {
	token := issueWithExpiry(t, "secret", "", time.Hour)

	_, err := NewTokenService("secret").VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
