package kvstore

import (
	"path/filepath"
	"testing"
)

func TestBoltRoundTrip(t *testing.T) {
	b, err := OpenBolt(filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	defer b.Close()

	if _, err := b.Get("bookingHistory"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for fresh store, got %v", err)
	}

	if err := b.Set("bookingHistory", []byte(`[{"guestName":"a"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := b.Get("bookingHistory")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"guestName":"a"}]` {
		t.Fatalf("Get returned %q", got)
	}

	if err := b.Delete("bookingHistory"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := b.Get("bookingHistory"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	if _, err := m.Get("agentName"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := m.Set("agentName", []byte("Alex")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := m.Get("agentName")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got[0] = 'a' // caller mutation must not leak into the store
	again, _ := m.Get("agentName")
	if string(again) != "Alex" {
		t.Fatalf("stored value mutated: %q", again)
	}

	if err := m.Delete("agentName"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get("agentName"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
