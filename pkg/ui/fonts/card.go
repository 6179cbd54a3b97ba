package fonts

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/kanafont/pkg/ui/dialog"
)

// SampleText is rendered in every card with the entry's preview style.
const SampleText = "あいうえお"

// SelectedMarker prefixes the name of the selected card.
const SelectedMarker = "● "

// CardHeight is the rendered height of a card, borders included.
const CardHeight = 4

// Card shows one catalog entry. Hover is local to the card and lives only as
// long as the card does.
type Card struct {
	name     string
	preview  lipgloss.Style
	selected bool
	onSelect func(name string)

	hovered bool
	focused bool
}

// NewCard builds a card. onSelect is called with the card's name on click.
func NewCard(name string, preview lipgloss.Style, selected bool, onSelect func(name string)) *Card {
	return &Card{name: name, preview: preview, selected: selected, onSelect: onSelect}
}

func (c *Card) Name() string { return c.name }
func (c *Card) Selected() bool { return c.selected }
func (c *Card) Hovered() bool { return c.hovered }
func (c *Card) Focused() bool { return c.focused }
func (c *Card) PointerEnter() { c.hovered = true }
func (c *Card) PointerLeave() { c.hovered = false }
func (c *Card) setFocus(f bool) { c.focused = f }

// Click reports the card's name to onSelect. It changes nothing else.
func (c *Card) Click() {
	if c.onSelect != nil {
		c.onSelect(c.name)
	}
}

// Label is the name line: the marker plus name when selected, else the name.
func (c *Card) Label() string {
	if c.selected {
		return SelectedMarker + c.name
	}
	return c.name
}

var (
	cardLabel  = lipgloss.NewStyle().Foreground(dialog.MainColor)
	cardSample = lipgloss.NewStyle().Foreground(dialog.SecondaryColor)
)

// View renders the card at the given outer width.
func (c *Card) View(width int) string {
	inner := max(1, width-4)

	border := lipgloss.RoundedBorder()
	if c.focused {
		border = lipgloss.ThickBorder()
	}
	borderColor := dialog.BorderColor
	if c.selected {
		borderColor = dialog.MainColor
	}
	labelStyle, sampleStyle := c.textStyles()

	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Background(c.background()).
		Padding(0, 1).
		Width(width - 2)

	label := labelStyle.Render(ansi.Truncate(c.Label(), inner, "…"))
	sample := sampleStyle.Render(SampleText)

	return style.Render(label + "\n" + sample)
}

func (c *Card) background() lipgloss.Color {
	if c.hovered {
		return dialog.CardColor
	}
	return dialog.BackgroundColor
}

// textStyles carries the card background into the label and sample, whose
// own resets would otherwise clear it.
func (c *Card) textStyles() (label, sample lipgloss.Style) {
	bg := c.background()
	return cardLabel.Background(bg), c.preview.Inherit(cardSample.Background(bg))
}
