package catalog

import "testing"

func TestFontsUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Fonts() {
		if f.Name == "" {
			t.Fatal("catalog entry with empty name")
		}
		if seen[f.Name] {
			t.Errorf("duplicate catalog name %q", f.Name)
		}
		seen[f.Name] = true
	}
	if len(seen) == 0 {
		t.Fatal("catalog is empty")
	}
}

func TestFontsReturnsCopy(t *testing.T) {
	a := Fonts()
	first := a[0].Name
	a[0].Name = "mutated"

	if got := Fonts()[0].Name; got != first {
		t.Errorf("Fonts()[0].Name = %q after caller mutation, want %q", got, first)
	}
}

func TestNamesMatchesOrder(t *testing.T) {
	names := Names()
	fonts := Fonts()
	if len(names) != len(fonts) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(fonts))
	}
	for i := range fonts {
		if names[i] != fonts[i].Name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], fonts[i].Name)
		}
	}
}

func TestLookup(t *testing.T) {
	name := Names()[1]
	e, ok := Lookup(name)
	if !ok || e.Name != name {
		t.Errorf("Lookup(%q) = %q, %v", name, e.Name, ok)
	}
	if _, ok := Lookup("Comic Sans"); ok {
		t.Error("Lookup of unknown name should fail")
	}
}
