// Package sound plays the UI click effect. Terminals have one sound, the
// bell, so that is what the click is.
package sound

import (
	"io"
	"log/slog"
	"sync"
)

// Player plays short UI sound effects. PlayClick must not block.
type Player interface {
	PlayClick()
}

// Bell rings the terminal bell on every click.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell returns a Bell writing to out (normally the TUI's output).
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

func (b *Bell) PlayClick() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.out.Write([]byte{'\a'}); err != nil {
		slog.Debug("play click", "err", err)
	}
}

// Nop is a Player that does nothing (--mute).
type Nop struct{}

func (Nop) PlayClick() {}
