package utils

import (
	"testing"
)

func TestGenerateULID(t *testing.T) {
	a, b := GenerateULID(), GenerateULID()
	if len(a) != 26 {
		t.Errorf("ULID length = %d, want 26", len(a))
	}
	if a == b {
		t.Error("consecutive ULIDs must differ")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword("hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("hunter2", "not-a-hash") {
		t.Error("garbage hash accepted")
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := GenerateAdminToken(secret)
	if err != nil {
		t.Fatalf("GenerateAdminToken() error = %v", err)
	}

	claims, err := ValidateJWT(token, secret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if role, _ := claims["role"].(string); role != "admin" {
		t.Errorf("role claim = %q, want admin", role)
	}

	if _, err := ValidateJWT(token, "other-secret"); err == nil {
		t.Error("token validated against the wrong secret")
	}
	if _, err := ValidateJWT("not.a.token", secret); err == nil {
		t.Error("malformed token validated")
	}
}

func TestAdminTokenRequiresSecret(t *testing.T) {
	if _, err := GenerateAdminToken(""); err == nil {
		t.Error("empty secret must be rejected")
	}
}
