package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFile(path)

	pair := domain.TokenPair{Access: "access-abc", Refresh: "refresh-xyz"}
	if err := store.Save(ctx, pair); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !ok {
		t.Fatal("Read() ok = false after Save")
	}
	if got != pair {
		t.Errorf("Read() = %+v, want %+v", got, pair)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}
}

func TestFileReadAbsent(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "missing.json"))

	_, ok, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ok {
		t.Error("Read() ok = true for a missing file")
	}
}

func TestFileReadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := NewFile(path)

	_, ok, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read() error = %v, corrupt files should read as absent", err)
	}
	if ok {
		t.Error("Read() ok = true for a corrupt file")
	}
}

func TestFileClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFile(path)

	if err := store.Save(ctx, domain.TokenPair{Access: "a", Refresh: "r"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok, _ := store.Read(ctx); ok {
		t.Error("Read() ok = true after Clear")
	}

	// Clearing an already empty store succeeds.
	if err := store.Clear(ctx); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, ok, _ := store.Read(ctx); ok {
		t.Error("new memory store should read as absent")
	}

	pair := domain.TokenPair{Access: "a", Refresh: "r"}
	if err := store.Save(ctx, pair); err != nil {
		t.Fatal(err)
	}
	got, ok, _ := store.Read(ctx)
	if !ok || got != pair {
		t.Errorf("Read() = %+v ok=%v, want %+v ok=true", got, ok, pair)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Read(ctx); ok {
		t.Error("Read() ok = true after Clear")
	}
}
