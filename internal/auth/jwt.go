// Package auth issues and verifies the stateless bearer tokens that gate
// protected routes. Tokens are HS256-signed JWTs with a fixed lifetime and no
// server-side revocation: logout is a client-local operation, and a token
// stays valid until its expiry instant or a signing-secret rotation.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// token, expired claims. Callers must not distinguish further.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the token payload: subject user id plus the email and admin flag
// needed by handlers without a store round-trip.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Admin bool   `json:"adm,omitempty"`
}

// UserID parses the numeric subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// TokenService signs and verifies bearer tokens with a process-wide secret.
// The secret is read-only after construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user, valid for the configured lifetime.
func (t *TokenService) Issue(userID int64, email string, admin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Email: email,
		Admin: admin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
func (t *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
