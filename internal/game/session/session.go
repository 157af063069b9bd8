// Package session scopes one play-through: the room arena, the enemy
// tallies and the output channel all live exactly as long as a Session.
package session

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/narrate"
	"github.com/cory-johannsen/adventure/internal/game/npc"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Session owns a World and the npc.Manager whose Counters every enemy of the
// session shares.
type Session struct {
	id       uuid.UUID
	world    *world.World
	npcs     *npc.Manager
	narrator *narrate.Narrator
	logger   *zap.Logger
}

// New creates a Session narrating to out.
//
// Precondition: out must be non-nil.
// Postcondition: the session has a fresh UUID, an empty World and zeroed
// enemy Counters; a nil logger is replaced by zap.NewNop().
func New(out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	logger = logger.With(zap.String("session", id.String()))
	narrator := narrate.New(out, logger)

	s := &Session{
		id:       id,
		world:    world.NewWorld(narrator, logger.Named("world")),
		npcs:     npc.NewManager(narrator, logger.Named("npc")),
		narrator: narrator,
		logger:   logger,
	}
	logger.Info("session started")
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// World returns the session's room arena.
func (s *Session) World() *world.World {
	return s.world
}

// NPCs returns the session's enemy manager.
func (s *Session) NPCs() *npc.Manager {
	return s.npcs
}

// Narrator returns the output channel shared by the session's rooms and
// enemies.
func (s *Session) Narrator() *narrate.Narrator {
	return s.narrator
}

// Logger returns the session-scoped logger.
func (s *Session) Logger() *zap.Logger {
	return s.logger
}
