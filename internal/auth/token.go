package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/SamDTech/realtor-api/internal/domain"
)

// ErrInvalidToken covers signature mismatches and malformed payloads alike;
// callers never learn which check failed.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies stateless bearer tokens. There is no
// session table and no revocation channel: a token stays valid until its
// natural expiry regardless of later credential changes.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager with a fixed token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload.
type Claims struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the subject.
func (tm *TokenManager) Issue(userID int64, name string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks the signature and payload shape and returns the identity the
// token encodes. Expiry is deliberately not enforced here: the identity
// extractor owns that policy, and tests need to inspect expired-but-intact
// tokens. Attacker-supplied garbage returns ErrInvalidToken, never a panic.
func (tm *TokenManager) Verify(tokenStr string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &domain.Identity{
		UserID:    claims.UserID,
		Name:      claims.Name,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
