// Package credential holds the host-side credential selection channel: which
// Gemini API key is active and whether it has been selected as a paid-tier key.
// The generation gateway only reads State through a Source on every call and
// never caches it, so a new selection takes effect on the next request.
package credential

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrEmptyKey is returned when selecting a blank API key.
var ErrEmptyKey = errors.New("api key cannot be empty")

// State is a point-in-time snapshot of the active credential.
type State struct {
	APIKey       string
	PaidSelected bool
}

// HasSelectedAPIKey reports whether a paid-tier credential is selected.
func (s State) HasSelectedAPIKey() bool {
	return s.PaidSelected && s.APIKey != ""
}

// Source resolves the current credential state.
type Source interface {
	Current(ctx context.Context) (State, error)
}

// Static is a fixed Source, mostly useful in tests.
type Static State

// Current implements Source.
func (s Static) Current(context.Context) (State, error) {
	return State(s), nil
}

// Store is a process-wide, mutable Source. The configured default key is used
// until the host selects another one; clearing a selection restores the default.
type Store struct {
	mu       sync.RWMutex
	fallback State
	selected *State
}

// NewStore creates a Store seeded with the configured default credential.
func NewStore(defaultKey string, defaultPaid bool) *Store {
	return &Store{fallback: State{APIKey: strings.TrimSpace(defaultKey), PaidSelected: defaultPaid}}
}

// Current implements Source.
func (s *Store) Current(context.Context) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected != nil {
		return *s.selected, nil
	}
	return s.fallback, nil
}

// Select makes apiKey the active paid-tier credential.
func (s *Store) Select(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &State{APIKey: apiKey, PaidSelected: true}
	return nil
}

// Clear drops any runtime selection and falls back to the configured default.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Selected reports whether a runtime selection is active.
func (s *Store) Selected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected != nil
}
