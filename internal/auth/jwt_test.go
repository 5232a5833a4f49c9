package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := Issue(secret, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if err := Verify(tok, secret); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := Issue(secret, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if err := Verify(tok, secret); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Issue([]byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if err := Verify(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	if err := Verify("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
