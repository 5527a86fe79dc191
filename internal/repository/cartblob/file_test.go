package cartblob

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageLoadAbsentKey(t *testing.T) {
	storage, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	blob, err := storage.Load(context.Background(), "cart:v1:nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if blob != nil {
		t.Fatalf("expected nil blob, got %q", blob)
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if err := storage.Save(ctx, "cart:v1:abc", []byte(`[{"productId":1}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := storage.Save(ctx, "cart:v1:abc", []byte(`[]`)); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	blob, err := storage.Load(ctx, "cart:v1:abc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(blob) != `[]` {
		t.Fatalf("expected last write to win, got %q", blob)
	}
}

func TestFileStorageKeyMapping(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := storage.Save(context.Background(), "cart:v1:abc", []byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cart_v1_abc.json")); err != nil {
		t.Fatalf("expected sanitized file name: %v", err)
	}
}

func TestFileStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "carts")
	storage, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := storage.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
