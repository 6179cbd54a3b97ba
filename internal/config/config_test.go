package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		data := []byte(`{"backend": "sqlite", "mute": true}`)
		if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Backend != BackendSQLite {
			t.Errorf("Backend: got %q, want %q", cfg.Backend, BackendSQLite)
		}
		if !cfg.Mute {
			t.Error("Mute: got false, want true")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Backend != "" || cfg.Mute {
			t.Errorf("expected empty config, got %+v", cfg)
		}
		if cfg.BackendOrDefault() != BackendJSON {
			t.Errorf("BackendOrDefault: got %q, want %q", cfg.BackendOrDefault(), BackendJSON)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{invalid"), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		if _, err := Load(dir); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	if err := Save(dir, &Config{Backend: BackendMemory, Mute: true}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendMemory || !cfg.Mute {
		t.Errorf("got %+v after round trip", cfg)
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "kanafont") {
		t.Errorf("DataDir: got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	dir, err = DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dir != filepath.Join("/home/tester", ".config", "kanafont") {
		t.Errorf("DataDir fallback: got %q", dir)
	}
}
