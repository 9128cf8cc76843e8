package token

import (
	"testing"
)

func TestIssueAndVerifyAccess(t *testing.T) {
	raw, err := IssueAccess(42)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	id, err := VerifyAccess(raw)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected user 42, got %d", id)
	}
}

func TestVerifyMissingToken(t *testing.T) {
	if _, err := VerifyAccess(""); err != ErrMissingToken {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	if _, err := VerifyAccess("not.a.token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	raw, err := IssueRefresh(7)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	if _, err := VerifyAccess(raw); err != ErrInvalidToken {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}
	if id, err := VerifyRefresh(raw); err != nil || id != 7 {
		t.Fatalf("verify refresh: id=%d err=%v", id, err)
	}
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	raw, err := IssueAccess(7)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if _, err := VerifyRefresh(raw); err != ErrInvalidToken {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}
