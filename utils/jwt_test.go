package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(42, "customer", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parsed, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := parsed.Claims.(*Claims)
	if claims.UserID != 42 || claims.Role != "customer" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	tok, err := GenerateToken(1, "customer", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	}); err == nil {
		t.Fatal("token accepted under the wrong secret")
	}
}

func TestGenerateTokenExpiry(t *testing.T) {
	tok, err := GenerateToken(1, "customer", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	}); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestRefreshTokenUsesOwnSecret(t *testing.T) {
	refresh, err := GenerateRefreshToken(7, "refresh-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	// must not validate against the access-token secret
	if _, err := jwt.Parse(refresh, func(t *jwt.Token) (any, error) {
		return []byte("access-secret"), nil
	}); err == nil {
		t.Fatal("refresh token accepted under the access secret")
	}

	parsed, err := jwt.Parse(refresh, func(t *jwt.Token) (any, error) {
		return []byte("refresh-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if sub, _ := claims.GetSubject(); sub != "refresh" {
		t.Errorf("sub = %q, want refresh", sub)
	}
	if uid, ok := claims["userId"].(float64); !ok || uint(uid) != 7 {
		t.Errorf("userId = %v, want 7", claims["userId"])
	}
}
