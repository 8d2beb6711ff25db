package session

import (
	"testing"
	"time"

	"github.com/aqala-site/aqala/internal/store"
)

func TestStartEndCycle(t *testing.T) {
	m := NewManager(store.NewMemoryKV(), []byte("test-secret"))

	if _, ok := m.UserID(); ok {
		t.Fatalf("expected no session initially")
	}

	m.Start("user-admin")
	uid, ok := m.UserID()
	if !ok || uid != "user-admin" {
		t.Fatalf("UserID = %q, %v", uid, ok)
	}

	// starting again overwrites: one active session per context
	m.Start("user-editor")
	if uid, _ := m.UserID(); uid != "user-editor" {
		t.Fatalf("expected session overwritten, got %q", uid)
	}

	m.End()
	if _, ok := m.UserID(); ok {
		t.Fatalf("expected session ended")
	}

	// ending a nonexistent session is not an error
	m.End()
}

func TestTamperedRecordResolvesToNoSession(t *testing.T) {
	kv := store.NewMemoryKV()
	m := NewManager(kv, []byte("test-secret"))
	if err := kv.Set(Key, "garbage-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := m.UserID(); ok {
		t.Fatalf("tampered record must resolve to no session")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	kv := store.NewMemoryKV()
	NewManager(kv, []byte("secret-a")).Start("user-admin")

	other := NewManager(kv, []byte("secret-b"))
	if _, ok := other.UserID(); ok {
		t.Fatalf("record signed with another secret must not verify")
	}
}

func TestExpiredSessionResolvesToNoSession(t *testing.T) {
	kv := store.NewMemoryKV()
	m := NewManager(kv, []byte("test-secret"))
	base := time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	m.Start("user-admin")

	m.now = func() time.Time { return base.Add(31 * 24 * time.Hour) }
	if _, ok := m.UserID(); ok {
		t.Fatalf("expired session must resolve to no session")
	}
}
