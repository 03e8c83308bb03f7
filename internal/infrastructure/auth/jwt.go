// Package auth validates the bearer tokens issued by the external identity
// service. Accounts, passwords and sessions live there; this service only
// needs the identity claims to resolve a stored profile.
package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// IdentityClaims are the claims the identity service puts in each token.

type IdentityClaims struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

func secret() []byte {
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		return []byte(v)
	}
	// Development fallback; deployments always set JWT_SECRET.
	return []byte("resto-requests-dev-secret")
}

// ParseToken verifies the signature and expiry of a bearer token and returns
// its identity claims.
func ParseToken(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || strings.TrimSpace(claims.UID) == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateToken signs a token for the given identity. Used by tests and by
// local tooling; production tokens come from the identity service.
func GenerateToken(uid, email, displayName string, ttl time.Duration) (string, error) {
	claims := &IdentityClaims{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "resto-requests",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}
