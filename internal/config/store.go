package config

import "sync"

// Store holds live settings behind a lock so background goroutines
// (notably the auto-scroll loop's speed source) always read the
// current values, including after a hot reload.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings Settings
}

// NewStore loads settings from path into a new store.
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		settings: LoadSettings(path),
	}
}

// Reload re-reads settings from disk.
func (s *Store) Reload() {
	settings := LoadSettings(s.path)
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// Settings returns a snapshot of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ScrollSpeed returns the current base scroll speed in rows per
// second. Handed to the scroller as its dynamic speed source.
func (s *Store) ScrollSpeed() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ScrollSpeed
}

// EdgeZone returns the current edge activation zone in rows.
func (s *Store) EdgeZone() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.EdgeZone
}

// Update applies fn to the settings and persists the result.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	fn(&s.settings)
	settings := s.settings
	path := s.path
	s.mu.Unlock()
	return SaveSettings(path, settings)
}
