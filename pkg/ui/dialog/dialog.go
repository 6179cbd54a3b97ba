// Package dialog is a modal surface for bubbletea programs: a dimmed overlay,
// a centred content box with a title row, Esc and backdrop dismissal, and an
// auto-focus signal fired when the dialog opens.
//
// The dialog never changes its own visibility. Dismissal calls OnOpenChange
// and the owner decides whether to apply it.
package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/kanafont/pkg/ui/mouse"
)

// Region IDs registered by the dialog itself.
const (
	RegionBackdrop = "dialog:backdrop"
	RegionContent  = "dialog:content"
)

// AutoFocusEvent is passed to OnOpenAutoFocus when the dialog opens.
// Calling PreventDefault stops the dialog from claiming initial focus.
type AutoFocusEvent struct {
	prevented bool
}

// PreventDefault cancels automatic focus.
func (e *AutoFocusEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *AutoFocusEvent) DefaultPrevented() bool { return e.prevented }

// Content is what the owner places inside the dialog.
type Content struct {
	Title   string // left side of the header row
	Actions string // right side of the header row, e.g. a close button
	Body    string
	Footer  string
}

// Layout is the screen geometry of the last render.
type Layout struct {
	Box     mouse.Rect
	Actions mouse.Rect
	Body    mouse.Rect
}

// Dialog is the surface. Set Open through SetOpen so open transitions fire
// OnOpenAutoFocus.
type Dialog struct {
	OnOpenChange    func(open bool)
	OnOpenAutoFocus func(e *AutoFocusEvent)

	open        bool
	autoFocused bool
	hits        *mouse.Handler
	layout      Layout
}

// New returns a closed dialog.
func New(onOpenChange func(open bool)) *Dialog {
	return &Dialog{
		OnOpenChange: onOpenChange,
		hits:         mouse.NewHandler(),
	}
}

// Open reports the visibility last passed to SetOpen.
func (d *Dialog) Open() bool { return d.open }

// SetOpen updates visibility. A closed->open transition fires exactly one
// AutoFocusEvent.
func (d *Dialog) SetOpen(open bool) {
	wasOpen := d.open
	d.open = open
	if !open {
		d.autoFocused = false
		d.hits.Clear()
		return
	}
	if wasOpen {
		return
	}

	ev := &AutoFocusEvent{}
	if d.OnOpenAutoFocus != nil {
		d.OnOpenAutoFocus(ev)
	}
	d.autoFocused = !ev.DefaultPrevented()
}

// AutoFocused reports whether the dialog took initial focus on open.
func (d *Dialog) AutoFocused() bool { return d.autoFocused }

// HitMap exposes the hit regions of the last render. Owners add their own
// regions after Render so they sit above the dialog's.
func (d *Dialog) HitMap() *mouse.HitMap { return d.hits.HitMap }

// Layout returns the geometry of the last render.
func (d *Dialog) Layout() Layout { return d.layout }

// BoxSize returns the outer box size for a screen, about 90% of the width
// and 85% of the height, clamped.
func BoxSize(screenW, screenH int) (int, int) {
	w := screenW * 90 / 100
	if w > 110 {
		w = 110
	}
	if w < 30 {
		w = min(30, screenW)
	}

	h := screenH * 85 / 100
	if h < 10 {
		h = min(10, screenH)
	}
	return w, h
}

// BodySize returns the space available to Content.Body for a screen.
func BodySize(screenW, screenH int) (int, int) {
	w, h := BoxSize(screenW, screenH)
	// border (2) + padding (2); border (2) + header + rule + footer
	return max(0, w-4), max(0, h-5)
}

// Render draws the overlay and content box over a screenW x screenH area and
// records hit regions. It returns "" when the dialog is closed.
func (d *Dialog) Render(screenW, screenH int, c Content) string {
	d.hits.Clear()
	if !d.open || screenW <= 0 || screenH <= 0 {
		d.layout = Layout{}
		return ""
	}

	boxW, _ := BoxSize(screenW, screenH)
	innerW, bodyH := BodySize(screenW, screenH)

	header := d.renderHeader(innerW, c.Title, c.Actions)
	rule := HeaderRule.Render(strings.Repeat("─", innerW))
	body := lipgloss.NewStyle().Width(innerW).Height(bodyH).MaxHeight(bodyH).Render(c.Body)
	footer := ansi.Truncate(c.Footer, innerW, "…")

	inner := lipgloss.JoinVertical(lipgloss.Left, header, rule, body, footer)
	box := Box.Width(boxW - 2).Render(inner)

	out := lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(OverlayColor))

	renderedW, renderedH := lipgloss.Size(box)
	boxX := centerOffset(screenW, renderedW)
	boxY := centerOffset(screenH, renderedH)

	actionsW := lipgloss.Width(c.Actions)
	d.layout = Layout{
		Box:     mouse.Rect{X: boxX, Y: boxY, W: renderedW, H: renderedH},
		Actions: mouse.Rect{X: boxX + 2 + innerW - actionsW, Y: boxY + 1, W: actionsW, H: 1},
		Body:    mouse.Rect{X: boxX + 2, Y: boxY + 3, W: innerW, H: bodyH},
	}

	d.hits.HitMap.AddRect(RegionBackdrop, 0, 0, screenW, screenH, nil)
	d.hits.HitMap.AddRect(RegionContent, boxX, boxY, renderedW, renderedH, nil)

	return out
}

// centerOffset matches lipgloss.Place: odd gaps put the extra cell after
// the box.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap / 2
}

func (d *Dialog) renderHeader(width int, title, actions string) string {
	actionsW := lipgloss.Width(actions)
	titleW := max(0, width-actionsW-1)
	title = ansi.Truncate(title, titleW, "…")
	gap := max(1, width-lipgloss.Width(title)-actionsW)
	return title + strings.Repeat(" ", gap) + actions
}

// Update handles the dialog's own dismissal: Esc, and left clicks on the
// backdrop. It returns the mouse action for the owner to act on and whether
// the message was consumed.
func (d *Dialog) Update(msg tea.Msg) (mouse.Action, bool) {
	if !d.open {
		return mouse.Action{}, false
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			d.requestClose()
			return mouse.Action{}, true
		}

	case tea.MouseMsg:
		action := d.hits.HandleMouse(msg)
		if action.Type == mouse.ActionClick && action.Region != nil && action.Region.ID == RegionBackdrop {
			d.requestClose()
			return action, true
		}
		return action, false
	}
	return mouse.Action{}, false
}

func (d *Dialog) requestClose() {
	if d.OnOpenChange != nil {
		d.OnOpenChange(false)
	}
}
