package utils

import (
	"testing"
	"time"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("admin-1", "ops@ecobin.dev", "super_admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := ExtractAdminClaims(token)
	if err != nil {
		t.Fatalf("ExtractAdminClaims: %v", err)
	}
	if claims.AdminID != "admin-1" {
		t.Errorf("AdminID = %q, want admin-1", claims.AdminID)
	}
	if claims.Email != "ops@ecobin.dev" {
		t.Errorf("Email = %q, want ops@ecobin.dev", claims.Email)
	}
	if claims.Role != "super_admin" {
		t.Errorf("Role = %q, want super_admin", claims.Role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("tenant-1", "t@ecobin.dev", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ExtractIDFromToken("not-a-jwt"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("hash must be deterministic")
	}
	if a == HashToken("other-token") {
		t.Error("different tokens must not collide")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
