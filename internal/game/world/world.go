package world

import (
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/narrate"
)

// World is the arena that owns every room and resolves room handles.
// Arena methods are safe for concurrent use; per-room state is not.
type World struct {
	mu       sync.RWMutex
	rooms    []*Room
	narrator *narrate.Narrator
	logger   *zap.Logger
}

// NewWorld creates an empty World.
//
// Postcondition: a nil logger is replaced by zap.NewNop(); a nil narrator
// discards room details.
func NewWorld(narrator *narrate.Narrator, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{narrator: narrator, logger: logger}
}

// NewRoom creates a room with the given name, an empty description, no
// links and no occupants.
//
// Postcondition: the returned room's ID resolves to it via Room.
func (w *World) NewRoom(name string) *Room {
	w.mu.Lock()
	r := &Room{
		id:    RoomID(len(w.rooms)),
		name:  name,
		links: make(map[Direction]RoomID),
		world: w,
	}
	w.rooms = append(w.rooms, r)
	w.mu.Unlock()

	w.logger.Debug("room created", zap.String("room", name), zap.Int("id", int(r.id)))
	return r
}

// Room returns the room with the given handle.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) Room(id RoomID) (*Room, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if id < 0 || int(id) >= len(w.rooms) {
		return nil, false
	}
	return w.rooms[id], true
}

// FindRoom returns the first room created with the given name.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) FindRoom(name string) (*Room, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, r := range w.rooms {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// Rooms returns all rooms in creation order.
//
// Postcondition: Returns a non-nil slice; may be empty.
func (w *World) Rooms() []*Room {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Room, len(w.rooms))
	copy(out, w.rooms)
	return out
}

// RoomCount returns the number of rooms in the world.
func (w *World) RoomCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.rooms)
}
