package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// TokenManager issues and verifies the signed bearer tokens that bind a
// subject user id to a fixed validity window. Tokens are stateless: there is
// no revocation list, any valid unexpired token is accepted.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user id.
func (m *TokenManager) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the subject user id.
// Every failure mode maps to Unauthenticated.
func (m *TokenManager) Verify(token string) (int64, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return 0, domain.E(domain.KindUnauthenticated, "invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, domain.E(domain.KindUnauthenticated, "token has no subject")
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.E(domain.KindUnauthenticated, "token subject is not a valid user id")
	}
	return id, nil
}
