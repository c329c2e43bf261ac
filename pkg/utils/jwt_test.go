package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(42, "cashier")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Login != "cashier" {
		t.Errorf("login = %q, want %q", claims.Login, "cashier")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	userID, err := manager.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, -time.Minute)

	token, err := manager.GenerateAccessToken(42, "cashier")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Error("expired access token was accepted")
	}

	refresh, err := manager.GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if _, err := manager.ValidateRefreshToken(refresh); err == nil {
		t.Error("expired refresh token was accepted")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, time.Hour)
	other := NewJWTManager("other-secret", time.Hour, time.Hour)

	token, err := manager.GenerateAccessToken(42, "cashier")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}
