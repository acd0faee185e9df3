// Package token issues and verifies the signed session tokens. A token is
// a stateless session: everything needed to authenticate a request is in
// the token itself, there is no server-side session table.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime is how long an issued session token stays valid.
const DefaultLifetime = 24 * time.Hour

// Configuration and signing errors. Both are fatal startup-time
// conditions, not per-request conditions to retry.
var (
	ErrNoSigningKey  = errors.New("no signing key configured")
	ErrSigningFailed = errors.New("failed to sign token")
)

// Verification errors
var (
	ErrTokenExpired    = errors.New("token has expired")
	ErrTokenMalformed  = errors.New("token is malformed")
	ErrTokenInvalidSig = errors.New("token signature is invalid")
)

// SessionClaims is the claim set embedded in every session token.
// Subject carries the identity's ID.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies HS256 session tokens with a process-wide key.
type Issuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewIssuer returns an Issuer signing with secret. A lifetime of zero or
// less falls back to DefaultLifetime.
func NewIssuer(secret []byte, lifetime time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSigningKey
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Issuer{secret: secret, lifetime: lifetime}, nil
}

// Lifetime returns the configured token lifetime.
func (i *Issuer) Lifetime() time.Duration {
	return i.lifetime
}

// Issue signs a token carrying {sub, username, iat, exp} where exp is
// issuance time plus the configured lifetime.
func (i *Issuer) Issue(subjectID, username string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	return signed, nil
}

// Parse verifies a token string and returns its claims.
func (i *Issuer) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalidSig
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, mapJWTError(err)
	}
	if !tok.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// mapJWTError maps jwt library errors to this package's sentinels.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrSignatureInvalid),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenInvalidSig
	default:
		return ErrTokenMalformed
	}
}
