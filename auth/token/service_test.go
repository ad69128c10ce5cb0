package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/ishwor/authcookbook/auth"
)

const testSecret = "test-secret-that-is-long-enough-0"

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(&Config{Secret: testSecret})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestService_IssueVerify_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	raw, err := svc.Issue("user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw == "" {
		t.Fatal("expected a non-empty token")
	}

	p, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Identity != "user@example.com" {
		t.Errorf("identity: got %q", p.Identity)
	}
	if p.Role != auth.RoleUser {
		t.Errorf("role: got %q", p.Role)
	}
}

func TestService_Verify_Expired(t *testing.T) {
	svc := newTestService(t)

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	raw, err := svc.Issue("user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Still valid one second before expiry.
	svc.now = func() time.Time { return issuedAt.Add(15*time.Minute - time.Second) }
	if _, err := svc.Verify(raw); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(15*time.Minute + time.Second) }
	if _, err := svc.Verify(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestService_Verify_TamperedSignature(t *testing.T) {
	svc := newTestService(t)

	raw, err := svc.Issue("user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Replace the last signature character with one that decodes to
	// different bytes. 'Q' and 'g' differ in their high bits, so one of
	// them always changes the decoded signature.
	replacement := byte('Q')
	if raw[len(raw)-1] == 'Q' {
		replacement = 'g'
	}
	tampered := raw[:len(raw)-1] + string(replacement)

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Verify_WrongKey(t *testing.T) {
	svc := newTestService(t)

	other, err := NewService(&Config{Secret: "a-completely-different-secret-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := other.Issue("user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Verify_WrongIssuer(t *testing.T) {
	svc := newTestService(t)

	other, err := NewService(&Config{Secret: testSecret, Issuer: "someone-else"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := other.Issue("user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidIssuer) {
		t.Fatalf("expected ErrInvalidIssuer, got %v", err)
	}
}

func TestService_Verify_UnknownRole(t *testing.T) {
	svc := newTestService(t)

	raw, err := svc.Issue("user@example.com", auth.Role("SUPERUSER"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, ErrMalformedClaims) {
		t.Fatalf("expected ErrMalformedClaims, got %v", err)
	}
}

func TestService_Verify_MissingSubject(t *testing.T) {
	svc := newTestService(t)

	raw, err := svc.Issue("", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, ErrMalformedClaims) {
		t.Fatalf("expected ErrMalformedClaims, got %v", err)
	}
}

func TestService_Verify_UnexpectedAlgorithm(t *testing.T) {
	svc := newTestService(t)

	// Sign a structurally valid token with a different HMAC variant.
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    DefaultIssuer,
			Subject:   "user@example.com",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: string(auth.RoleUser),
	}
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Verify_Garbage(t *testing.T) {
	svc := newTestService(t)

	for _, raw := range []string{"", "garbage", "a.b", strings.Repeat("x.", 3)} {
		if _, err := svc.Verify(raw); err == nil {
			t.Errorf("Verify(%q): expected error", raw)
		}
	}
}

func TestNewService_Validation(t *testing.T) {
	if _, err := NewService(&Config{}); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := NewService(&Config{Secret: "s", Method: "RS256"}); err == nil {
		t.Fatal("expected error for unsupported method")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{Secret: testSecret}
	cfg.ApplyDefaults()

	if cfg.Method != HS256 {
		t.Errorf("method: got %s", cfg.Method)
	}
	if cfg.Issuer != DefaultIssuer {
		t.Errorf("issuer: got %s", cfg.Issuer)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Errorf("ttl: got %s", cfg.AccessTokenTTL)
	}
}
