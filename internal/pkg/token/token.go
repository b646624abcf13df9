// Package token issues and verifies the JWT access tokens used by the HTTP layer.
// Tokens are signed with HMAC-SHA256 and carry the user ID as the subject claim.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var signingMethod = jwt.SigningMethodHS256

// ErrInvalidToken is returned when a token fails signature or claims validation.
var ErrInvalidToken = errors.New("token is invalid or expired")

// Maker mints and verifies access tokens with a shared HMAC secret.
type Maker struct {
	secret []byte
	ttl    time.Duration
}

// NewMaker creates a token maker. The secret must be non-empty and the
// TTL positive.
func NewMaker(secret string, ttl time.Duration) (*Maker, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	return &Maker{secret: []byte(secret), ttl: ttl}, nil
}

// Mint issues a signed token for the given user ID, valid for the
// configured TTL from now.
func (m *Maker) Mint(userID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// Verify validates the token signature and expiry and returns the
// user ID from the subject claim.
func (m *Maker) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: subject claim is missing", ErrInvalidToken)
	}

	return claims.Subject, nil
}
