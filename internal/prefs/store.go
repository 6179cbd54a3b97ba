package prefs

import (
	"fmt"
	"log/slog"
	"sync"
)

// Store is the single shared cell for the selected font. Reads are cheap,
// writes are last-write-wins and are persisted through the Persister.
// Subscribers are called outside the lock, in registration order.
type Store struct {
	// persistMu orders SetFont's write and save against Reload, so a reload
	// never reads the backend between the two.
	persistMu sync.Mutex

	mu        sync.Mutex
	prefs     Preferences
	persister Persister
	subs      []subscriber
	nextID    int
}

type subscriber struct {
	id int
	fn func(font string)
}

// Open loads preferences from p and returns a store backed by it.
func Open(p Persister) (*Store, error) {
	loaded, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if loaded.Font == "" {
		loaded.Font = DefaultFont
	}
	return &Store{prefs: loaded, persister: p}, nil
}

// NewMemoryStore returns a store backed by a fresh MemoryPersister.
func NewMemoryStore() *Store {
	s, _ := Open(NewMemoryPersister())
	return s
}

// Font returns the currently selected font name.
func (s *Store) Font() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Font
}

// SetFont stores name as the selected font. The name is not validated.
// A persistence failure is logged and the in-memory value is kept.
func (s *Store) SetFont(name string) {
	s.persistMu.Lock()
	s.mu.Lock()
	changed := s.prefs.Font != name
	s.prefs.Font = name
	snapshot := s.prefs
	s.mu.Unlock()

	if err := s.persister.Save(snapshot); err != nil {
		slog.Error("save preferences", "font", name, "err", err)
	}
	s.persistMu.Unlock()

	if changed {
		s.notify(name)
	}
}

// Subscribe registers fn to be called with the new font after every change.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(font string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Reload re-reads the backend and notifies subscribers if the font changed
// outside this process.
func (s *Store) Reload() error {
	s.persistMu.Lock()
	loaded, err := s.persister.Load()
	if err != nil {
		s.persistMu.Unlock()
		return fmt.Errorf("reload preferences: %w", err)
	}
	if loaded.Font == "" {
		loaded.Font = DefaultFont
	}

	s.mu.Lock()
	changed := s.prefs.Font != loaded.Font
	s.prefs = loaded
	s.mu.Unlock()
	s.persistMu.Unlock()

	if changed {
		slog.Debug("preferences changed externally", "font", loaded.Font)
		s.notify(loaded.Font)
	}
	return nil
}

func (s *Store) notify(font string) {
	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(font)
	}
}
