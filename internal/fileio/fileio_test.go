package fileio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	content := "hello\nwörld\n"

	if err := Save(context.Background(), path, content); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != content {
		t.Fatalf("round trip: got %q, want %q", got, content)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := Save(context.Background(), path, "old"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(context.Background(), path, "new"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "new" {
		t.Fatalf("got %q, want %q", got, "new")
	}
}

func TestLoadMissingFileIsNotFound(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if err.Kind != KindNotFound {
		t.Fatalf("Kind: got %v, want KindNotFound", err.Kind)
	}
	if err.Op != "load" {
		t.Fatalf("Op: got %q, want %q", err.Op, "load")
	}
}

func TestLoadInvalidUTF8IsEncodingError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.bin")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if err.Kind != KindEncoding {
		t.Fatalf("Kind: got %v, want KindEncoding", err.Kind)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := Cancelled("pick_open").Message(); got != "cancelled" {
		t.Fatalf("Message: got %q, want %q", got, "cancelled")
	}
	e := &Error{Kind: KindNotFound, Op: "load", Path: "missing.txt"}
	if got := e.Message(); got != "missing.txt: not found" {
		t.Fatalf("Message: got %q, want %q", got, "missing.txt: not found")
	}
}
