package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u-1", "u@chain.example", "User One", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UID != "u-1" || claims.Email != "u@chain.example" || claims.DisplayName != "User One" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_Invalid(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateToken("u-1", "u@chain.example", "User One", -time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing uid", func(t *testing.T) {
		token, err := GenerateToken("", "u@chain.example", "User One", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
