package security

import (
	"testing"
	"time"
)

func TestIssueAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := IssueToken("top-secret", "user-123", "a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	claims, err := ParseToken(token, "top-secret")
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "user-123")
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "a@b.com")
	}
}

func TestParseToken_RepeatedVerificationIsStable(t *testing.T) {
	t.Parallel()

	token, err := IssueToken("top-secret", "user-123", "a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	first, err := ParseToken(token, "top-secret")
	if err != nil {
		t.Fatalf("first ParseToken error: %v", err)
	}
	second, err := ParseToken(token, "top-secret")
	if err != nil {
		t.Fatalf("second ParseToken error: %v", err)
	}

	if first.Subject != second.Subject || first.Email != second.Email {
		t.Fatalf("claims differ across verifications: %+v vs %+v", first, second)
	}
	if !first.ExpiresAt.Equal(second.ExpiresAt.Time) {
		t.Fatalf("expiry differs across verifications")
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := IssueToken("top-secret", "user-123", "a@b.com", -1*time.Minute)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := ParseToken(token, "top-secret"); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := IssueToken("right-secret", "user-123", "a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := ParseToken(token, "wrong-secret"); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("not.a.jwt", "top-secret"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

// Expiry, tampering, and garbage input must be indistinguishable to callers.
func TestParseToken_FailuresAreUniform(t *testing.T) {
	t.Parallel()

	expired, err := IssueToken("top-secret", "u1", "a@b.com", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	tampered, err := IssueToken("other-secret", "u1", "a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	var messages []string
	for _, tok := range []string{expired, tampered, "garbage"} {
		_, err := ParseToken(tok, "top-secret")
		if err == nil {
			t.Fatalf("expected rejection for token %q", tok)
		}
		messages = append(messages, err.Error())
	}

	for _, msg := range messages[1:] {
		if msg != messages[0] {
			t.Fatalf("rejection messages leak failure cause: %v", messages)
		}
	}
}
