package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/bandroom/bandroom/internal/common"
)

func newManager(secret string, ttl time.Duration, admins ...uint64) *Manager {
	return NewManager([]byte(secret), ttl, NewAdminSet(admins))
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := newManager("super-secret", time.Hour)

	tok, err := m.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("subject mismatch: got %d want 7", claims.UserID)
	}
	if claims.IsAdmin {
		t.Fatalf("subject 7 should not be admin")
	}
}

func TestIssue_AdminFlagFromSet(t *testing.T) {
	t.Parallel()

	m := newManager("secret", time.Hour, 42)

	for _, tt := range []struct {
		subject uint64
		want    bool
	}{
		{subject: 42, want: true},
		{subject: 7, want: false},
	} {
		tok, err := m.Issue(tt.subject)
		if err != nil {
			t.Fatalf("Issue(%d) error: %v", tt.subject, err)
		}
		claims, err := m.Verify(tok)
		if err != nil {
			t.Fatalf("Verify error: %v", err)
		}
		if claims.IsAdmin != tt.want {
			t.Fatalf("is_admin for %d: got %v want %v", tt.subject, claims.IsAdmin, tt.want)
		}
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := newManager("secret", -1*time.Second)

	tok, err := m.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newManager("right-secret", time.Hour).Issue(2)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newManager("wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := newManager("k", time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestAdminSet_Contains(t *testing.T) {
	t.Parallel()

	s := NewAdminSet([]uint64{1, 2})
	if !s.Contains(1) || !s.Contains(2) {
		t.Fatal("expected members to be reported")
	}
	if s.Contains(3) {
		t.Fatal("unexpected member")
	}

	var nilSet *AdminSet
	if nilSet.Contains(1) {
		t.Fatal("nil set must contain nothing")
	}
}
