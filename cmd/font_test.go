package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marcus/kanafont/internal/catalog"
	"github.com/marcus/kanafont/internal/config"
	"github.com/marcus/kanafont/internal/output"
	"github.com/marcus/kanafont/internal/prefs"
)

func TestResolveFontName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "exact", input: "Klee One", want: "Klee One", wantOK: true},
		{name: "case insensitive", input: "klee one", want: "Klee One", wantOK: true},
		{name: "surrounding space", input: "  DotGothic16 ", want: "DotGothic16", wantOK: true},
		{name: "unknown", input: "Comic Sans", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveFontName(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("resolveFontName(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSuggestFonts(t *testing.T) {
	got := suggestFonts("maru")
	if len(got) == 0 {
		t.Fatal("expected suggestions for 'maru'")
	}
	if len(got) > maxSuggestions {
		t.Errorf("got %d suggestions, want at most %d", len(got), maxSuggestions)
	}
	for _, s := range got {
		if _, ok := catalog.Lookup(s); !ok {
			t.Errorf("suggestion %q is not in the catalog", s)
		}
	}

	if got := suggestFonts("zzzzqqq"); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestOpenStoreBackends(t *testing.T) {
	for _, b := range []string{config.BackendJSON, config.BackendSQLite, config.BackendMemory} {
		t.Run(b, func(t *testing.T) {
			opened, err := openStore(b, t.TempDir())
			if err != nil {
				t.Fatalf("openStore(%q) failed: %v", b, err)
			}
			defer opened.Close()

			if got := opened.Store.Font(); got != prefs.DefaultFont {
				t.Errorf("Font() = %q, want %q", got, prefs.DefaultFont)
			}
			if (b == config.BackendJSON) != (opened.WatchPath != "") {
				t.Errorf("WatchPath = %q for backend %q", opened.WatchPath, b)
			}
		})
	}

	if _, err := openStore("redis", t.TempDir()); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestBackendFlag(t *testing.T) {
	var b backendFlag
	if err := b.Set("SQLite"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if b.String() != config.BackendSQLite {
		t.Errorf("String() = %q, want %q", b.String(), config.BackendSQLite)
	}
	if err := b.Set("postgres"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFontSetGetList(t *testing.T) {
	dir := t.TempDir()
	output.Stderr = &bytes.Buffer{}

	if _, err := runCLI(t, "font", "set", "klee one", "--data-dir", dir, "--backend", "json"); err != nil {
		t.Fatalf("font set failed: %v", err)
	}

	got, err := runCLI(t, "font", "get", "--data-dir", dir, "--backend", "json")
	if err != nil {
		t.Fatalf("font get failed: %v", err)
	}
	if strings.TrimSpace(got) != "Klee One" {
		t.Errorf("font get = %q, want %q", got, "Klee One")
	}

	got, err = runCLI(t, "font", "list", "--data-dir", dir, "--backend", "json")
	if err != nil {
		t.Fatalf("font list failed: %v", err)
	}
	if !strings.Contains(got, "Klee One ●") {
		t.Errorf("font list does not mark selection:\n%s", got)
	}
}

func TestFontSetUnknown(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	output.Stderr = &stderr

	if _, err := runCLI(t, "font", "set", "Maru", "--data-dir", dir, "--backend", "json"); err == nil {
		t.Fatal("expected error for unknown font")
	}
	if !strings.Contains(stderr.String(), "did you mean") {
		t.Errorf("expected suggestions, got %q", stderr.String())
	}

	opened, err := openStore(config.BackendJSON, dir)
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	if opened.Store.Font() != prefs.DefaultFont {
		t.Errorf("unknown font was stored: %q", opened.Store.Font())
	}
}
