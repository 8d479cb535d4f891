package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotYourPiece  = errors.New("square does not hold one of your pieces")
	ErrIllegalMove   = errors.New("illegal move")
	ErrMatchNotFound = errors.New("match not found")
)

// Manager keeps the matches of a process keyed by a random ID.
type Manager struct {
	mu      sync.RWMutex
	matches map[string]*Match
}

func NewManager() *Manager {
	return &Manager{matches: make(map[string]*Match)}
}

func (m *Manager) NewMatch(options ...Option) *Match {
	match := NewMatch(options...)
	match.id = uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[match.id] = match
	return match
}

func (m *Manager) Get(id string) (*Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	match, ok := m.matches[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	return match, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.matches[id]; !ok {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	delete(m.matches, id)
	return nil
}

// Len returns the number of live matches.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matches)
}

// Prune drops matches that have not been updated since before.
func (m *Manager) Prune(before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	pruned := 0
	for id, match := range m.matches {
		if match.UpdatedAt().Before(before) {
			delete(m.matches, id)
			pruned++
		}
	}
	return pruned
}
