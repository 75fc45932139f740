package token

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/clock"
)

func newTestIssuer(t *testing.T, secret string) (*Issuer, *clock.FakeClock, *snowflake.Node) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	fc := clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	return NewIssuer(secret, fc), fc, node
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer, _, node := newTestIssuer(t, "secret")
	userID := node.Generate()

	raw, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != userID {
		t.Fatalf("expected %s, got %s", userID, got)
	}
}

func TestVerifyUsesIssuerClock(t *testing.T) {
	// Pin the clock a year behind the wall clock. Issuance and
	// verification must agree on that time source, so the token is
	// valid even though wall-clock validation would call it expired.
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	fc := clock.NewFakeClock(time.Now().UTC().Add(-365 * 24 * time.Hour))
	issuer := NewIssuer("secret", fc)

	raw, err := issuer.Issue(node.Generate())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Verify(raw); err != nil {
		t.Fatalf("verify against issuer clock: %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer, fc, node := newTestIssuer(t, "secret")

	raw, err := issuer.Issue(node.Generate())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	fc.Advance(TTL - time.Hour)
	if _, err := issuer.Verify(raw); err != nil {
		t.Fatalf("token should still be valid inside the TTL: %v", err)
	}

	fc.Advance(2 * time.Hour)
	if _, err := issuer.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuerA, fc, node := newTestIssuer(t, "secret-a")

	raw, err := issuerA.Issue(node.Generate())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer("secret-b", fc).Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	issuer, _, _ := newTestIssuer(t, "secret")

	for _, raw := range []string{"", "   ", "not.a.token"} {
		if _, err := issuer.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}
