package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := NewLocalStore(path)

	if err := s.SetItem("workingHours", `{"startTime":"09:00"}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Re-open and read back.
	reopened := NewLocalStore(path)
	got, ok := reopened.GetItem("workingHours")
	if !ok {
		t.Fatal("expected the key to survive a reopen")
	}
	if got != `{"startTime":"09:00"}` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestLocalStoreMissingKey(t *testing.T) {
	s := NewLocalStore(filepath.Join(t.TempDir(), "store.json"))
	if _, ok := s.GetItem("nothing"); ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestLocalStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewLocalStore(path)
	if _, ok := s.GetItem("workingHours"); ok {
		t.Error("corrupt store must start empty")
	}
	// And it must still accept writes.
	if err := s.SetItem("k", "v"); err != nil {
		t.Fatalf("set after corruption: %v", err)
	}
}

func TestLocalStoreRemoveItem(t *testing.T) {
	s := NewLocalStore(filepath.Join(t.TempDir(), "store.json"))
	if err := s.SetItem("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.RemoveItem("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.GetItem("k"); ok {
		t.Error("expected the key to be gone")
	}
}
