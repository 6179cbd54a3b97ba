// Package fonts is the Fonts modal: a grid of catalog cards previewing each
// font, where clicking a card stores it as the selected font.
//
// The modal does not own its visibility. The parent passes it in with
// SetOpen and is asked to change it through the onOpenChange callback.
package fonts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/kanafont/internal/catalog"
	"github.com/marcus/kanafont/internal/sound"
	"github.com/marcus/kanafont/pkg/ui/dialog"
	"github.com/marcus/kanafont/pkg/ui/mouse"
)

// Title is the dialog heading.
const Title = "Fonts"

const (
	regionClose      = "fonts:close"
	regionCardPrefix = "fonts:card:"
	scrollStep       = 3
)

// Preferences is the part of the shared preferences store the modal uses.
type Preferences interface {
	Font() string
	SetFont(name string)
}

var closeButton = lipgloss.NewStyle().Foreground(dialog.SecondaryColor)

// Modal is the controller for the Fonts dialog.
type Modal struct {
	entries      []catalog.Entry
	prefs        Preferences
	player       sound.Player
	onOpenChange func(open bool)

	open   bool
	dialog *dialog.Dialog
	list   *List // nil while closed
	focus  int   // keyboard focus, -1 for none
	rects  []mouse.Rect

	width, height int
	viewport      viewport.Model
	keys          keyMap
	help          help.Model
}

// New returns a closed modal over entries.
func New(entries []catalog.Entry, prefs Preferences, player sound.Player, onOpenChange func(open bool)) *Modal {
	m := &Modal{
		entries:      entries,
		prefs:        prefs,
		player:       player,
		onOpenChange: onOpenChange,
		focus:        -1,
		viewport:     viewport.New(0, 0),
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	m.SetSize(80, 24)
	m.dialog = dialog.New(onOpenChange)
	m.dialog.OnOpenAutoFocus = func(e *dialog.AutoFocusEvent) {
		// Leave focus with the surrounding screen
		e.PreventDefault()
	}
	return m
}

// IsOpen reports the visibility last passed to SetOpen.
func (m *Modal) IsOpen() bool { return m.open }

// List returns the mounted card list, nil while closed.
func (m *Modal) List() *List { return m.list }

// SetOpen passes the owner's visibility flag in. Opening mounts fresh cards;
// closing drops them along with their hover state.
func (m *Modal) SetOpen(open bool) {
	if open == m.open {
		return
	}
	m.open = open

	if open {
		m.list = NewList(m.entries, m.prefs.Font(), m.handleSelect)
		m.focus = -1
		m.viewport.SetYOffset(0)
	} else {
		m.list = nil
		m.rects = nil
	}

	m.dialog.SetOpen(open)
	if open && m.dialog.AutoFocused() {
		m.setFocus(0)
	}
}

// SetSize sets the screen size the overlay covers.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
	bodyW, bodyH := dialog.BodySize(width, height)
	m.viewport.Width = bodyW
	m.viewport.Height = bodyH
	m.help.Width = bodyW
}

// handleSelect is the card click path: sound first, then the store write.
func (m *Modal) handleSelect(name string) {
	m.player.PlayClick()
	m.prefs.SetFont(name)
}

// handleClose is the close button path. Native dismissal (Esc, backdrop)
// goes straight from the dialog to onOpenChange without a sound.
func (m *Modal) handleClose() {
	m.player.PlayClick()
	if m.onOpenChange != nil {
		m.onOpenChange(false)
	}
}

// Update handles resizes, and input while open.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(msg.Width, msg.Height)
		return nil
	}
	if !m.open {
		return nil
	}

	action, handled := m.dialog.Update(msg)
	if handled {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(action)
	}
	return nil
}

func (m *Modal) handleKey(msg tea.KeyMsg) {
	n := m.list.Len()
	cols := Columns(m.viewport.Width)

	switch {
	case key.Matches(msg, m.keys.Close):
		m.handleClose()

	case key.Matches(msg, m.keys.Select):
		if m.focus >= 0 && m.focus < n {
			m.list.Cards()[m.focus].Click()
		}

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveFocus(cols)

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-cols)

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	}
}

// moveFocus moves the focus ring by delta cards. With no focus yet, the
// first move lands on the first card.
func (m *Modal) moveFocus(delta int) {
	n := m.list.Len()
	if n == 0 {
		return
	}
	if m.focus < 0 {
		m.setFocus(0)
		return
	}
	next := m.focus + delta
	if next < 0 || next >= n {
		if delta == 1 || delta == -1 {
			next = (next + n) % n
		} else {
			return
		}
	}
	m.setFocus(next)
}

func (m *Modal) setFocus(i int) {
	m.focus = i
	m.list.Focus(i)
	m.ensureFocusVisible()
}

func (m *Modal) ensureFocusVisible() {
	if m.focus < 0 || m.viewport.Height <= 0 {
		return
	}
	cols := Columns(m.viewport.Width)
	top := (m.focus / cols) * CardHeight
	bottom := top + CardHeight

	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Modal) handleMouse(action mouse.Action) {
	card := -1
	isClose := false
	if action.Region != nil {
		if action.Region.ID == regionClose {
			isClose = true
		} else if strings.HasPrefix(action.Region.ID, regionCardPrefix) {
			card, _ = strconv.Atoi(strings.TrimPrefix(action.Region.ID, regionCardPrefix))
		}
	}

	switch action.Type {
	case mouse.ActionHover:
		m.list.Hover(card)

	case mouse.ActionClick:
		if isClose {
			m.handleClose()
		} else if card >= 0 && card < m.list.Len() {
			m.list.Cards()[card].Click()
		}

	case mouse.ActionScrollDown:
		m.viewport.SetYOffset(m.viewport.YOffset + scrollStep)

	case mouse.ActionScrollUp:
		m.viewport.SetYOffset(m.viewport.YOffset - scrollStep)
	}
}

// header is the title and catalog count.
func (m *Modal) header() string {
	return dialog.Title.Render(Title) + " " + dialog.TitleCount.Render(fmt.Sprintf("(%d)", len(m.entries)))
}

// View renders the overlay, or nothing at all while closed.
func (m *Modal) View() string {
	if !m.open {
		return ""
	}

	m.list.SetSelected(m.prefs.Font())
	grid, rects := m.list.View(m.viewport.Width)
	m.rects = rects
	m.viewport.SetContent(grid)

	out := m.dialog.Render(m.width, m.height, dialog.Content{
		Title:   m.header(),
		Actions: closeButton.Render(" ✕ "),
		Body:    m.viewport.View(),
		Footer:  m.help.View(m.keys),
	})
	m.registerRegions()
	return out
}

// registerRegions adds the close button and the visible part of every card
// on top of the dialog's own regions.
func (m *Modal) registerRegions() {
	layout := m.dialog.Layout()
	hits := m.dialog.HitMap()
	if layout.Actions.W > 0 {
		hits.AddRect(regionClose, layout.Actions.X, layout.Actions.Y, layout.Actions.W, layout.Actions.H, nil)
	}

	body := layout.Body
	for i, r := range m.rects {
		top := body.Y + r.Y - m.viewport.YOffset
		bottom := top + r.H
		top = max(top, body.Y)
		bottom = min(bottom, body.Y+body.H)
		if bottom <= top {
			continue
		}
		hits.AddRect(regionCardPrefix+strconv.Itoa(i), body.X+r.X, top, r.W, bottom-top, i)
	}
}
