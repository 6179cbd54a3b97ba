package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilePersister(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		p := NewFilePersister(t.TempDir())
		got, err := p.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got.Font != DefaultFont {
			t.Errorf("Font: got %q, want %q", got.Font, DefaultFont)
		}
	})

	t.Run("save creates directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "kanafont")
		p := NewFilePersister(dir)
		if err := p.Save(Preferences{Font: "Klee One"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
			t.Fatalf("preferences file not written: %v", err)
		}

		got, err := p.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got.Font != "Klee One" {
			t.Errorf("Font: got %q, want %q", got.Font, "Klee One")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if _, err := NewFilePersister(dir).Load(); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})

	t.Run("missing field keeps default", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{}"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		got, err := NewFilePersister(dir).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got.Font != DefaultFont {
			t.Errorf("Font: got %q, want %q", got.Font, DefaultFont)
		}
	})
}
