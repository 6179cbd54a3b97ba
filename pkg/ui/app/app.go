// Package app is the kanafont home screen. It owns the Fonts modal's
// visibility and shows the current font.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/kanafont/internal/catalog"
	"github.com/marcus/kanafont/internal/sound"
	"github.com/marcus/kanafont/pkg/ui/dialog"
	"github.com/marcus/kanafont/pkg/ui/fonts"
)

// Store is the preferences store as seen by the home screen.
type Store interface {
	Font() string
	SetFont(name string)
	Subscribe(fn func(font string)) (unsubscribe func())
}

// FontChangedMsg tells the screen the stored font changed, possibly from
// another process.
type FontChangedMsg struct {
	Font string
}

var (
	appTitle   = lipgloss.NewStyle().Bold(true).Foreground(dialog.MainColor)
	labelStyle = lipgloss.NewStyle().Foreground(dialog.SecondaryColor)
	fontStyle  = lipgloss.NewStyle().Bold(true)
)

var (
	openFontsKey = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fonts"))
	quitKey      = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	forceQuitKey = key.NewBinding(key.WithKeys("ctrl+c"))
)

// Model is the bubbletea model for the home screen.
type Model struct {
	Width, Height int
	FontsOpen     bool
	Font          string

	store       Store
	fonts       *fonts.Modal
	changes     chan string
	unsubscribe func()
}

// New builds the home screen over store. Call Close when the program exits.
func New(store Store, player sound.Player) *Model {
	m := &Model{
		Width:   80,
		Height:  24,
		Font:    store.Font(),
		store:   store,
		changes: make(chan string, 1),
	}
	m.fonts = fonts.New(catalog.Fonts(), store, player, m.setFontsOpen)
	m.unsubscribe = store.Subscribe(m.notifyFontChanged)
	return m
}

// Close drops the store subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// setFontsOpen is the modal's onOpenChange: the owner applies the request.
func (m *Model) setFontsOpen(open bool) {
	m.FontsOpen = open
	m.fonts.SetOpen(open)
}

// notifyFontChanged may run on any goroutine. Only the latest value
// matters, so a pending notification absorbs later ones.
func (m *Model) notifyFontChanged(font string) {
	select {
	case m.changes <- font:
	default:
	}
}

func waitForFontChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return FontChangedMsg{Font: <-ch}
	}
}

// Init starts listening for store changes.
func (m *Model) Init() tea.Cmd {
	return waitForFontChange(m.changes)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.fonts.SetSize(msg.Width, msg.Height)
		return m, nil

	case FontChangedMsg:
		// Re-read rather than trust msg.Font; later writes may have been absorbed
		m.Font = m.store.Font()
		return m, waitForFontChange(m.changes)

	case tea.KeyMsg:
		if key.Matches(msg, forceQuitKey) {
			return m, tea.Quit
		}
		if m.FontsOpen {
			return m, m.fonts.Update(msg)
		}
		switch {
		case key.Matches(msg, openFontsKey):
			m.setFontsOpen(true)
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		if m.FontsOpen {
			return m, m.fonts.Update(msg)
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.FontsOpen {
		return m.fonts.View()
	}

	var sb strings.Builder
	sb.WriteString(appTitle.Render("kanafont"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Current font: "))
	sb.WriteString(fontStyle.Render(m.Font))
	sb.WriteString("\n")

	sample := lipgloss.NewStyle()
	if e, ok := catalog.Lookup(m.Font); ok {
		sample = e.Preview
	}
	sb.WriteString(sample.Render(fonts.SampleText))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%s: %s · %s: %s",
		openFontsKey.Help().Key, openFontsKey.Help().Desc,
		quitKey.Help().Key, quitKey.Help().Desc)))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
