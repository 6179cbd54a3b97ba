package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderFontList_Empty(t *testing.T) {
	lines := RenderFontList(nil, "Sans", FontListOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderFontList_MarksSelection(t *testing.T) {
	lines := RenderFontList([]string{"Sans", "Serif"}, "Serif", FontListOptions{})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "├── Sans") {
		t.Errorf("expected mid connector and Sans, got: %s", lines[0])
	}
	if strings.Contains(lines[0], "●") {
		t.Errorf("unselected line has mark: %s", lines[0])
	}
	if lines[1] != "└── Serif ●" {
		t.Errorf("expected last connector and mark, got: %s", lines[1])
	}
}

func TestRenderFontList_UnknownSelection(t *testing.T) {
	out := RenderFontListString([]string{"Mono"}, "Unknown", FontListOptions{})
	if out != "└── Mono" {
		t.Errorf("got %q", out)
	}
}

func TestRenderFontList_Numbered(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = "F"
	}
	lines := RenderFontList(names, "", FontListOptions{Numbered: true})
	if !strings.HasPrefix(lines[0], "├──  1. F") {
		t.Errorf("expected padded number, got: %q", lines[0])
	}
	if !strings.HasPrefix(lines[9], "└── 10. F") {
		t.Errorf("expected two-digit number, got: %q", lines[9])
	}
}

func TestErrorWritesToStderr(t *testing.T) {
	var buf bytes.Buffer
	old := Stderr
	Stderr = &buf
	defer func() { Stderr = old }()

	Error("unknown font %q", "Comic")
	if !strings.Contains(buf.String(), `unknown font "Comic"`) {
		t.Errorf("got %q", buf.String())
	}
}
