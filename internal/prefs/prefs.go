// Package prefs holds the shared application preferences and the backends
// that persist them.
package prefs

import "sync"

// DefaultFont is the font used before the user has picked one.
const DefaultFont = "Noto Sans Japanese"

// Preferences is the persisted preference record.
type Preferences struct {
	Font string `json:"font"`
}

// Defaults returns preferences with every field at its init value.
func Defaults() Preferences {
	return Preferences{Font: DefaultFont}
}

// Persister loads and saves preferences. Load on an empty backend returns
// Defaults().
type Persister interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// MemoryPersister keeps preferences in memory. Used by tests and --backend memory.
type MemoryPersister struct {
	mu    sync.Mutex
	prefs *Preferences
	saves int
}

// NewMemoryPersister returns an empty in-memory backend.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load() (Preferences, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.prefs == nil {
		return Defaults(), nil
	}
	return *p.prefs, nil
}

func (p *MemoryPersister) Save(prefs Preferences) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefs = &prefs
	p.saves++
	return nil
}

// Saves returns how many times Save was called.
func (p *MemoryPersister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}
