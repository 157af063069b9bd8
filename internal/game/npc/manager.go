package npc

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/narrate"
)

// Manager spawns enemies and owns the Counters they share.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	enemies  []*Enemy
	counters *Counters
	narrator *narrate.Narrator
	logger   *zap.Logger
}

// NewManager creates a Manager with fresh Counters.
//
// Postcondition: a nil logger is replaced by zap.NewNop(); a nil narrator
// discards enemy speech.
func NewManager(narrator *narrate.Narrator, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		counters: NewCounters(),
		narrator: narrator,
		logger:   logger,
	}
}

// Spawn constructs an Enemy bound to this manager's Counters.
//
// Postcondition: Counters().Created() is incremented by exactly one.
func (m *Manager) Spawn(name, description string) *Enemy {
	e := &Enemy{
		name:        name,
		description: description,
		counters:    m.counters,
		narrator:    m.narrator,
		logger:      m.logger,
	}
	n := m.counters.created.Add(1)

	m.mu.Lock()
	m.enemies = append(m.enemies, e)
	m.mu.Unlock()

	m.logger.Debug("enemy spawned",
		zap.String("enemy", name),
		zap.String("spawn", fmt.Sprintf("%s-%d", name, n)),
	)
	return e
}

// Enemies returns a snapshot of all spawned enemies in spawn order.
//
// Postcondition: Returns a non-nil slice (may be empty).
func (m *Manager) Enemies() []*Enemy {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Enemy, len(m.enemies))
	copy(out, m.enemies)
	return out
}

// Counters returns the tallies shared by every enemy of this manager.
func (m *Manager) Counters() *Counters {
	return m.counters
}
