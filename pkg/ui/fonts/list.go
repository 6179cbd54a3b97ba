package fonts

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/kanafont/internal/catalog"
	"github.com/marcus/kanafont/pkg/ui/mouse"
)

const (
	minCardWidth = 14
	columnGap    = 1
)

// List is one card per catalog entry, in catalog order.
type List struct {
	cards   []*Card
	hovered int
}

// NewList builds the cards for entries. It does not sort or filter.
func NewList(entries []catalog.Entry, selected string, onSelect func(name string)) *List {
	l := &List{cards: make([]*Card, 0, len(entries)), hovered: -1}
	for _, e := range entries {
		l.cards = append(l.cards, NewCard(e.Name, e.Preview, e.Name == selected, onSelect))
	}
	return l
}

// Cards returns the cards in catalog order.
func (l *List) Cards() []*Card { return l.cards }

// Len returns the number of cards.
func (l *List) Len() int { return len(l.cards) }

// SetSelected marks the card whose name equals selected. Unknown names
// leave every card unselected.
func (l *List) SetSelected(selected string) {
	for _, c := range l.cards {
		c.selected = c.name == selected
	}
}

// Hover moves the pointer to card i, or off every card when i < 0.
func (l *List) Hover(i int) {
	if i == l.hovered {
		return
	}
	if l.hovered >= 0 && l.hovered < len(l.cards) {
		l.cards[l.hovered].PointerLeave()
	}
	l.hovered = -1
	if i >= 0 && i < len(l.cards) {
		l.cards[i].PointerEnter()
		l.hovered = i
	}
}

// Focus puts the keyboard focus ring on card i, or nowhere when i < 0.
func (l *List) Focus(i int) {
	for j, c := range l.cards {
		c.setFocus(j == i)
	}
}

// Columns returns the grid column count for a width: 2, 3 or 4.
func Columns(width int) int {
	switch {
	case width >= 90:
		return 4
	case width >= 60:
		return 3
	default:
		return 2
	}
}

func cardWidth(width, cols int) int {
	return max(minCardWidth, (width-(cols-1)*columnGap)/cols)
}

// View renders the grid and returns each card's rectangle relative to the
// grid's top-left corner, indexed like Cards().
func (l *List) View(width int) (string, []mouse.Rect) {
	if len(l.cards) == 0 {
		return "", nil
	}

	cols := Columns(width)
	cw := cardWidth(width, cols)
	gap := strings.Repeat(" ", columnGap)

	rects := make([]mouse.Rect, len(l.cards))
	var rows []string
	for start := 0; start < len(l.cards); start += cols {
		end := min(start+cols, len(l.cards))
		row := start / cols

		var parts []string
		for i := start; i < end; i++ {
			col := i - start
			if col > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, l.cards[i].View(cw))
			rects[i] = mouse.Rect{X: col * (cw + columnGap), Y: row * CardHeight, W: cw, H: CardHeight}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...), rects
}
