package output

import (
	"fmt"
	"strings"
)

const (
	connectorMid  = "\u251c\u2500\u2500 " // ├──
	connectorLast = "\u2514\u2500\u2500 " // └──
	selectedMark  = " \u25cf"             // ●
)

// FontListOptions configures font list rendering
type FontListOptions struct {
	Numbered bool // prefix each line with its 1-based position
}

// RenderFontList renders catalog names in order, marking the selected one.
// A selection that matches no name marks nothing.
func RenderFontList(names []string, selected string, opts FontListOptions) []string {
	lines := make([]string, 0, len(names))
	width := len(fmt.Sprint(len(names)))

	for i, name := range names {
		connector := connectorMid
		if i == len(names)-1 {
			connector = connectorLast
		}

		line := connector
		if opts.Numbered {
			line += fmt.Sprintf("%*d. ", width, i+1)
		}
		line += name
		if name == selected {
			line += selectedMark
		}
		lines = append(lines, line)
	}

	return lines
}

// RenderFontListString joins RenderFontList output
func RenderFontListString(names []string, selected string, opts FontListOptions) string {
	return strings.Join(RenderFontList(names, selected, opts), "\n")
}
