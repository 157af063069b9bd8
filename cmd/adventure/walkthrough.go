package main

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// walkthrough plays a fixed route: in every room it looks around, picks up
// the item lying there and fights the occupant with each held item until
// one works.
type walkthrough struct {
	backpack []*item.Item
	logger   *zap.Logger
}

func newWalkthrough(logger *zap.Logger) *walkthrough {
	return &walkthrough{logger: logger}
}

// Backpack returns the items picked up so far, in pickup order.
func (w *walkthrough) Backpack() []*item.Item {
	return w.backpack
}

// Run visits start, then each room reached along dirs, and returns the room
// the walk ends in.
func (w *walkthrough) Run(start *world.Room, dirs []world.Direction) *world.Room {
	current := start
	w.visit(current)
	for _, dir := range dirs {
		next := current.Move(dir)
		if next == current {
			w.logger.Info("bumped into a wall",
				zap.String("room", current.Name()),
				zap.String("direction", string(dir)),
				zap.Bool("compass", dir.IsStandard()),
			)
			continue
		}
		current = next
		w.visit(current)
	}
	return current
}

func (w *walkthrough) visit(room *world.Room) {
	room.Details()

	if it, ok := room.Item(); ok {
		w.backpack = append(w.backpack, it)
		room.ClearItem()
		w.logger.Info("picked up item", zap.String("item", it.Name()), zap.String("room", room.Name()))
	}

	enemy, ok := room.Character()
	if !ok {
		return
	}
	enemy.Talk()
	for _, it := range w.backpack {
		if enemy.FightWith(it) {
			room.ClearCharacter()
			return
		}
	}
}
