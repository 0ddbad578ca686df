package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Minute, "user-registry")
	tok, exp, err := m.GenerateAccessToken("seed", "users:write")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry should be in the future")
	}
	claims, err := m.ParseAccessToken(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "seed" || claims.Scope != "users:write" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", time.Minute, "user-registry")
	other := NewJWTManager("other", time.Minute, "user-registry")
	foreign, _, _ := other.GenerateAccessToken("x", "")
	expired, _, _ := NewJWTManager("secret", -time.Minute, "user-registry").GenerateAccessToken("x", "")
	wrongIssuer, _, _ := NewJWTManager("secret", time.Minute, "someone-else").GenerateAccessToken("x", "")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", foreign},
		{"expired", expired},
		{"wrong issuer", wrongIssuer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ParseAccessToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
