package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration is 7 days.
const TokenDuration = 7 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// tokenClaims binds a user id to an expiry instant.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TokenService mints and verifies stateless HS256 bearer tokens. Tokens are
// not persisted anywhere: validity is determined purely by signature and
// expiry at verification time. There is no early revocation.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// IssueToken produces a signed token embedding the user id, expiring
// TokenDuration from now.
func (s *TokenService) IssueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenDuration)),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

// VerifyToken returns the embedded user id, ErrTokenExpired when the expiry
// has passed, or ErrTokenInvalid for any signature or structure failure.
func (s *TokenService) VerifyToken(tokenString string) (string, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}

	return claims.UserID, nil
}
