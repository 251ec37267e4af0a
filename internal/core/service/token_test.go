package service

import (
	"testing"
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

func TestTokenManager_IssueVerifyRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", -time.Hour)
	// NewTokenManager clamps non-positive TTLs, so build one directly.
	m.ttl = -time.Hour

	token, err := m.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(token); domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected unauthenticated for expired token, got %v", err)
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected unauthenticated for wrong secret, got %v", err)
	}
}

func TestTokenManager_RejectsMalformed(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	if _, err := m.Verify("not-a-token"); domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected unauthenticated for malformed token, got %v", err)
	}
}
