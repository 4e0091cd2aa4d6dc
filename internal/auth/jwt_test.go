package auth

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "user@example.com")
	}
	if claims.Role != "user" {
		t.Errorf("Role = %q, want %q", claims.Role, "user")
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
	if claims.ID == "" {
		t.Error("expected a token ID for blacklisting")
	}
}

func TestRefreshTokenCarriesReturnedID(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(uuid.New(), "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a non-empty token ID")
	}

	claims, err := svc.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if claims.ID != tokenID {
		t.Errorf("claims.ID = %q, want %q", claims.ID, tokenID)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeRefresh)
	}
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	_, refresh, err := svc.GenerateRefreshToken(userID, "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	if _, err := svc.ValidateAccessToken(refresh); err != ErrWrongTokenType {
		t.Errorf("ValidateAccessToken(refresh) error = %v, want %v", err, ErrWrongTokenType)
	}
	if _, err := svc.ValidateRefreshToken(access); err != ErrWrongTokenType {
		t.Errorf("ValidateRefreshToken(access) error = %v, want %v", err, ErrWrongTokenType)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("right-secret")
	other := NewJWTService("wrong-secret")

	token, err := svc.GenerateAccessToken(uuid.New(), "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken(uuid.New(), "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := svc.ValidateToken(tampered); err == nil {
		t.Error("expected validation to fail for a tampered signature")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret")

	tests := []string{"", "not-a-token", "a.b.c"}
	for _, tt := range tests {
		if _, err := svc.ValidateToken(tt); err == nil {
			t.Errorf("ValidateToken(%q) expected error", tt)
		}
	}
}
