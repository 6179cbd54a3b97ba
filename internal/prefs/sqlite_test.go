package prefs

import "testing"

func TestSQLitePersister(t *testing.T) {
	dir := t.TempDir()

	p, err := OpenSQLite(dir)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	got, err := p.Load()
	if err != nil {
		t.Fatalf("Load on empty db failed: %v", err)
	}
	if got.Font != DefaultFont {
		t.Errorf("empty db Font: got %q, want %q", got.Font, DefaultFont)
	}

	if err := p.Save(Preferences{Font: "Sawarabi Mincho"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := p.Save(Preferences{Font: "Hachi Maru Pop"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen to prove the value hit disk
	p, err = OpenSQLite(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer p.Close()

	got, err = p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Font != "Hachi Maru Pop" {
		t.Errorf("Font: got %q, want %q", got.Font, "Hachi Maru Pop")
	}
}

func TestSQLiteBackedStore(t *testing.T) {
	p, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer p.Close()

	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	s.SetFont("Klee One")

	loaded, err := p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Font != "Klee One" {
		t.Errorf("persisted Font: got %q, want %q", loaded.Font, "Klee One")
	}
}
