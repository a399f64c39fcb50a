package providers

import "testing"

func TestLocalIdentity(t *testing.T) {
	if id, ok := NewLocalIdentity("u1").CurrentUserID(); !ok || id != "u1" {
		t.Fatalf("unexpected identity %q %v", id, ok)
	}
	if _, ok := NewLocalIdentity("").CurrentUserID(); ok {
		t.Fatalf("blank user should be signed out")
	}
}
