// Package world provides the game world model: an arena of rooms linked by
// directions, each holding at most one enemy and one item.
package world

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/npc"
	"github.com/cory-johannsen/adventure/internal/game/opt"
)

// separator is the rule printed under a room's name.
var separator = strings.Repeat("-", 20)

// RoomID is a room's stable handle within its World.
type RoomID int

// Exit is a resolved link out of a room.
type Exit struct {
	Direction Direction
	Target    *Room
}

// Room is a location in the world.
//
// Invariant: every value in links identifies a room of the same World.
type Room struct {
	id          RoomID
	name        string
	description string
	links       map[Direction]RoomID
	character   opt.Value[*npc.Enemy]
	item        opt.Value[*item.Item]
	world       *World
}

// ID returns the room's handle.
func (r *Room) ID() RoomID {
	return r.id
}

// Name returns the room's name.
func (r *Room) Name() string {
	return r.name
}

// Description returns the room's description.
func (r *Room) Description() string {
	return r.description
}

// SetDescription replaces the room's description.
func (r *Room) SetDescription(description string) {
	r.description = description
}

// Link points dir at other, replacing any existing link in that direction.
// No link back from other is created.
//
// Precondition: other must belong to the same World as r; Link panics otherwise.
func (r *Room) Link(other *Room, dir Direction) {
	if other.world != r.world {
		panic(fmt.Sprintf("world: cannot link room %q to room %q of another world", r.name, other.name))
	}
	r.links[dir] = other.id
	r.world.logger.Debug("room linked",
		zap.String("from", r.name),
		zap.String("direction", string(dir)),
		zap.String("to", other.name),
	)
}

// Move returns the room reached by following dir.
//
// Postcondition: Returns r itself when dir is not linked.
func (r *Room) Move(dir Direction) *Room {
	id, ok := r.links[dir]
	if !ok {
		r.world.logger.Debug("no exit",
			zap.String("room", r.name),
			zap.String("direction", string(dir)),
		)
		return r
	}
	target, _ := r.world.Room(id)
	return target
}

// Exits returns the room's links sorted by target name, then direction.
//
// Postcondition: Returns a non-nil slice (may be empty).
func (r *Room) Exits() []Exit {
	exits := make([]Exit, 0, len(r.links))
	for dir, id := range r.links {
		target, _ := r.world.Room(id)
		exits = append(exits, Exit{Direction: dir, Target: target})
	}
	slices.SortFunc(exits, func(a, b Exit) int {
		return cmp.Or(
			cmp.Compare(a.Target.name, b.Target.name),
			cmp.Compare(a.Direction, b.Direction),
		)
	})
	return exits
}

// Character returns the enemy occupying the room, if any.
func (r *Room) Character() (*npc.Enemy, bool) {
	return r.character.Get()
}

// SetCharacter places e in the room, replacing any current occupant.
// A nil e empties the slot.
func (r *Room) SetCharacter(e *npc.Enemy) {
	if e == nil {
		r.ClearCharacter()
		return
	}
	r.character = opt.Some(e)
}

// ClearCharacter empties the room's enemy slot.
func (r *Room) ClearCharacter() {
	r.character = opt.None[*npc.Enemy]()
}

// Item returns the item lying in the room, if any.
func (r *Room) Item() (*item.Item, bool) {
	return r.item.Get()
}

// SetItem places it in the room, replacing any current item.
// A nil it empties the slot.
func (r *Room) SetItem(it *item.Item) {
	if it == nil {
		r.ClearItem()
		return
	}
	r.item = opt.Some(it)
}

// ClearItem empties the room's item slot.
func (r *Room) ClearItem() {
	r.item = opt.None[*item.Item]()
}

// Details narrates and returns the full room report: name, separator,
// description, one line per exit, then the occupant enemy and item.
//
// Postcondition: empty sections are omitted; lines are joined by "\n" with
// no trailing newline.
func (r *Room) Details() string {
	sections := []string{r.name, separator, r.description}
	for _, exit := range r.Exits() {
		sections = append(sections, fmt.Sprintf("The %s is %s", exit.Target.name, exit.Direction))
	}
	if e, ok := r.character.Get(); ok {
		sections = append(sections, e.Describe())
	}
	if it, ok := r.item.Get(); ok {
		sections = append(sections, it.Describe())
	}

	sections = slices.DeleteFunc(sections, func(s string) bool { return s == "" })
	details := strings.Join(sections, "\n")
	r.world.narrator.Say(details)
	return details
}
