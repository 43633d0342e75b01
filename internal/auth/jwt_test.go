package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, RoleStaff)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Role != RoleStaff {
		t.Errorf("role = %q, want %q", claims.Role, RoleStaff)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", RoleStaff)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken("secret-b", token); err == nil {
		t.Error("token validated with the wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("secret", "not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}
