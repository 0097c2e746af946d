package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// backends returns a fresh instance of every Store implementation that can
// run without external services.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	return map[string]Store{
		"memory": NewMemory(),
		"file":   fileStore,
	}
}

// TestStoreContract runs the shared Get/Set/Delete contract against every
// local backend.
func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// Missing key.
			if _, err := s.Get(ctx, "absent"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(absent) error = %v, want ErrNotFound", err)
			}

			// Round trip.
			if err := s.Set(ctx, "articles", []byte(`[{"id":"1"}]`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := s.Get(ctx, "articles")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(got) != `[{"id":"1"}]` {
				t.Errorf("Get = %q, want stored value", got)
			}

			// Whole-value replace.
			if err := s.Set(ctx, "articles", []byte(`[]`)); err != nil {
				t.Fatalf("Set (replace): %v", err)
			}
			got, _ = s.Get(ctx, "articles")
			if string(got) != `[]` {
				t.Errorf("Get after replace = %q, want %q", got, `[]`)
			}

			// Delete, and delete of an absent key.
			if err := s.Delete(ctx, "articles"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := s.Get(ctx, "articles"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
			}
			if err := s.Delete(ctx, "articles"); err != nil {
				t.Errorf("Delete(absent) = %v, want nil", err)
			}
		})
	}
}

// TestFileSurvivesReopen verifies durability across store instances (the
// restart case).
func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := first.Set(ctx, "session:abc", []byte(`{"id":"1"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile (reopen): %v", err)
	}
	got, err := second.Get(ctx, "session:abc")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != `{"id":"1"}` {
		t.Errorf("Get after reopen = %q", got)
	}
}

// TestFileKeyEscaping verifies that namespaced keys map to distinct,
// filesystem-safe file names.
func TestFileKeyEscaping(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	keys := []string{"session:abc", "session/abc", "session abc", "sessionabc"}
	for _, k := range keys {
		if err := s.Set(ctx, k, []byte(k)); err != nil {
			t.Fatalf("Set(%q): %v", k, err)
		}
	}
	for _, k := range keys {
		got, err := s.Get(ctx, k)
		if err != nil {
			t.Fatalf("Get(%q): %v", k, err)
		}
		if string(got) != k {
			t.Errorf("Get(%q) = %q — key collision", k, got)
		}
	}

	// Every file must live directly in the data dir.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != len(keys) {
		t.Errorf("file count = %d, want %d", len(entries), len(keys))
	}
	for _, e := range entries {
		if e.IsDir() {
			t.Errorf("unexpected directory %q in data dir", e.Name())
		}
		if filepath.Ext(e.Name()) != ".json" {
			t.Errorf("file %q missing .json extension", e.Name())
		}
	}
}

// TestMemoryCopiesValues verifies that callers can't mutate stored data
// through retained slices.
func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []byte("original")
	m.Set(ctx, "k", in)
	in[0] = 'X'

	got, _ := m.Get(ctx, "k")
	if string(got) != "original" {
		t.Errorf("stored value mutated through caller slice: %q", got)
	}

	got[0] = 'Y'
	again, _ := m.Get(ctx, "k")
	if string(again) != "original" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}
}
