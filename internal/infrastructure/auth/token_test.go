package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	a, err := NewTokenAuthenticator("test-secret", "taskflow", time.Hour)
	if err != nil {
		t.Fatalf("new authenticator: %v", err)
	}
	token, err := a.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := a.UserIDFromAuthHeader("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("unexpected user id: %s", userID)
	}
}

func TestRejectsForeignTokens(t *testing.T) {
	a, err := NewTokenAuthenticator("test-secret", "taskflow", time.Hour)
	if err != nil {
		t.Fatalf("new authenticator: %v", err)
	}

	sign := func(secret string, claims jwt.MapClaims) string {
		t.Helper()
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		return signed
	}
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": "user-123",
			"iss": "taskflow",
			"exp": time.Now().Add(5 * time.Minute).Unix(),
		}
	}

	expired := valid()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()
	wrongIssuer := valid()
	wrongIssuer["iss"] = "someone-else"
	noExpiry := valid()
	delete(noExpiry, "exp")

	tests := map[string]string{
		"wrong secret": sign("other-secret", valid()),
		"expired":      sign("test-secret", expired),
		"wrong issuer": sign("test-secret", wrongIssuer),
		"no expiry":    sign("test-secret", noExpiry),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := a.UserIDFromBearer(token); err == nil {
				t.Fatalf("expected token to be rejected")
			}
		})
	}
}

func TestAuthHeaderErrors(t *testing.T) {
	a, err := NewTokenAuthenticator("s", "", 0)
	if err != nil {
		t.Fatalf("new authenticator: %v", err)
	}
	if _, err := a.UserIDFromAuthHeader(""); err != errMissingAuthorization {
		t.Fatalf("expected missing header error, got %v", err)
	}
	for _, h := range []string{"Token a.b.c", "Bearer", "Bearer nodots"} {
		if _, err := a.UserIDFromAuthHeader(h); err != errBadAuthorization {
			t.Fatalf("%q: expected bad auth header error, got %v", h, err)
		}
	}
	if _, err := NewTokenAuthenticator("", "", 0); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
