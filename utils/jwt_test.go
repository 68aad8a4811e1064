package utils

import (
	"testing"

	"deadline/models"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateSessionJWT("demo-admin", models.RoleAdmin, secret, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, role, err := ParseSessionJWT(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "demo-admin" {
		t.Fatalf("expected demo-admin, got %s", userID)
	}
	if role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %s", role)
	}
}

func TestSessionJWTWrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("demo-admin", models.RoleAdmin, []byte("secret-a"), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := ParseSessionJWT(token, []byte("secret-b")); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestSessionJWTExpired(t *testing.T) {
	token, err := GenerateSessionJWT("demo-admin", models.RoleAdmin, []byte("s"), -1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := ParseSessionJWT(token, []byte("s")); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}

func TestSessionJWTGarbage(t *testing.T) {
	if _, _, err := ParseSessionJWT("not.a.token", []byte("s")); err == nil {
		t.Fatal("expected parse to fail for malformed token")
	}
}

func TestSessionJWTUnknownRole(t *testing.T) {
	token, err := GenerateSessionJWT("demo-admin", models.UserRole("superuser"), []byte("s"), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := ParseSessionJWT(token, []byte("s")); err == nil {
		t.Fatal("expected parse to reject unknown role claim")
	}
}
