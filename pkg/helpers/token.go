package helpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pommyhq/accounts-api/pkg/apperr"
)

// TokenManager issues and verifies the signed session tokens. Tokens carry a
// single userId claim and an absolute expiry; nothing is stored server-side,
// so a token stays valid until it expires naturally.
type TokenManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{Secret: []byte(secret), TTL: ttl}
}

// Claims is the token payload: the user id plus the registered claims.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Issue signs a token for userID. An empty signing secret is a deployment
// fault, not a request fault: it fails every call with INVALID_SECRET_KEY.
func (m *TokenManager) Issue(userID string) (string, error) {
	if len(m.Secret) == 0 {
		return "", apperr.New(apperr.KindInvalidSecretKey)
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return "", apperr.New(apperr.KindInternalError).WithDetails(err.Error())
	}
	return signed, nil
}

// Verify decodes and validates a token. A bad signature, bad structure, and
// an elapsed expiry all surface as the same INVALID_OR_EXPIRED_TOKEN kind so
// callers cannot tell which one occurred. A structurally valid token whose
// payload lacks the userId claim fails with INVALID_TOKEN_PAYLOAD instead.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	if len(m.Secret) == 0 {
		return nil, apperr.New(apperr.KindInvalidSecretKey)
	}
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.KindInvalidOrExpiredToken)
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, apperr.New(apperr.KindInvalidOrExpiredToken)
	}
	if claims.UserID == "" {
		return nil, apperr.New(apperr.KindInvalidTokenPayload)
	}
	return claims, nil
}
