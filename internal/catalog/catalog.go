// Package catalog holds the fixed list of display fonts offered in the
// Fonts modal.
package catalog

import "github.com/charmbracelet/lipgloss"

// Entry is one selectable font. Name is both the label and the identity key.
type Entry struct {
	Name    string
	Preview lipgloss.Style // style applied to the sample glyphs
}

// fonts is defined once and never mutated. Order is the display order.
var fonts = []Entry{
	{Name: "Noto Sans Japanese", Preview: lipgloss.NewStyle()},
	{Name: "Noto Serif Japanese", Preview: lipgloss.NewStyle().Italic(true)},
	{Name: "Zen Maru Gothic", Preview: lipgloss.NewStyle().Foreground(lipgloss.Color("219"))},
	{Name: "M PLUS Rounded 1c", Preview: lipgloss.NewStyle().Foreground(lipgloss.Color("117"))},
	{Name: "Kosugi Maru", Preview: lipgloss.NewStyle().Faint(true)},
	{Name: "Sawarabi Mincho", Preview: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("180"))},
	{Name: "Dela Gothic One", Preview: lipgloss.NewStyle().Bold(true)},
	{Name: "Yusei Magic", Preview: lipgloss.NewStyle().Foreground(lipgloss.Color("214"))},
	{Name: "Hachi Maru Pop", Preview: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))},
	{Name: "Klee One", Preview: lipgloss.NewStyle().Underline(true)},
	{Name: "DotGothic16", Preview: lipgloss.NewStyle().Foreground(lipgloss.Color("46"))},
	{Name: "Reggae One", Preview: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))},
}

// Fonts returns the catalog in display order. The slice is a copy.
func Fonts() []Entry {
	out := make([]Entry, len(fonts))
	copy(out, fonts)
	return out
}

// Names returns the catalog names in display order.
func Names() []string {
	names := make([]string, 0, len(fonts))
	for _, f := range fonts {
		names = append(names, f.Name)
	}
	return names
}

// Lookup finds an entry by exact name.
func Lookup(name string) (Entry, bool) {
	for _, f := range fonts {
		if f.Name == name {
			return f, true
		}
	}
	return Entry{}, false
}
