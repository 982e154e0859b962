package pkg

import (
	"errors"
	"testing"
)

func TestGenerateAndParseAccess(t *testing.T) {
	pair, err := GeneratePair(42)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}

	claims, err := ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id = %d, want 42", claims.UserID)
	}
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	if _, err := ParseAccess("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	pair, err := GeneratePair(7)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	// Signed with the access secret, so the refresh path must refuse it.
	if _, err := Refresh(pair.AccessToken); err == nil {
		t.Fatal("expected refresh to reject an access token")
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	pair, err := GeneratePair(7)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	next, err := Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := ParseAccess(next.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("user id = %d, want 7", claims.UserID)
	}
}

func TestParseAccessAfterSecretChange(t *testing.T) {
	pair, err := GeneratePair(3)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	SetJWTSecrets("rotated-access", "rotated-refresh")
	defer SetJWTSecrets("dev-access-secret", "dev-refresh-secret")

	_, err = ParseAccess(pair.AccessToken)
	if err == nil {
		t.Fatal("token signed with the old secret must not verify")
	}
	if errors.Is(err, ErrTokenExpired) {
		t.Fatal("signature mismatch must not read as expiry")
	}
}
