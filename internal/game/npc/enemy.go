// Package npc provides enemies and the session-scoped manager that spawns them.
package npc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/narrate"
	"github.com/cory-johannsen/adventure/internal/game/opt"
)

// Enemy is an obstacle that can only be fended off with the item named by
// its weakness.
type Enemy struct {
	name         string
	description  string
	conversation opt.Value[string]
	weakness     opt.Value[string]

	counters *Counters
	narrator *narrate.Narrator
	logger   *zap.Logger
}

// Name returns the enemy's name.
func (e *Enemy) Name() string {
	return e.name
}

// Description returns the enemy's description.
func (e *Enemy) Description() string {
	return e.description
}

// Conversation returns the enemy's line and whether one was set.
func (e *Enemy) Conversation() (string, bool) {
	return e.conversation.Get()
}

// Weakness returns the name of the item that defeats the enemy and whether
// one was set.
func (e *Enemy) Weakness() (string, bool) {
	return e.weakness.Get()
}

// SetConversation sets the line the enemy says when talked to.
func (e *Enemy) SetConversation(conversation string) {
	e.conversation = opt.Some(conversation)
}

// SetWeakness sets the name of the item that defeats the enemy.
func (e *Enemy) SetWeakness(itemName string) {
	e.weakness = opt.Some(itemName)
}

// Talk narrates and returns the enemy's line.
//
// Postcondition: Returns "[<name> says]: <conversation>"; an unset
// conversation renders as the empty string.
func (e *Enemy) Talk() string {
	line := fmt.Sprintf("[%s says]: %s", e.name, e.conversation.OrZero())
	e.narrator.Say(line)
	return line
}

// Fight attempts to fend the enemy off with the named item.
//
// Postcondition: Returns true and increments the shared defeated tally iff
// a weakness is set and equals itemName exactly. No state changes otherwise.
func (e *Enemy) Fight(itemName string) bool {
	weakness, ok := e.weakness.Get()
	if ok && itemName == weakness {
		total := e.counters.defeated.Add(1)
		e.narrator.Say(fmt.Sprintf("You fend %s off with the %s", e.name, weakness))
		e.logger.Debug("enemy defeated",
			zap.String("enemy", e.name),
			zap.String("item", itemName),
			zap.Int64("defeated", total),
		)
		return true
	}
	e.narrator.Say(fmt.Sprintf("%s crushes you, puny adventurer!", e.name))
	e.logger.Debug("fight lost",
		zap.String("enemy", e.name),
		zap.String("item", itemName),
	)
	return false
}

// FightWith fights the enemy with it, comparing by item name.
//
// Precondition: it must be non-nil.
func (e *Enemy) FightWith(it *item.Item) bool {
	return e.Fight(it.Name())
}

// Describe returns the text shown when the enemy occupies a room.
//
// Postcondition: Returns "<name> is here!\n<description>". Nothing is narrated.
func (e *Enemy) Describe() string {
	return fmt.Sprintf("%s is here!\n%s", e.name, e.description)
}

// Defeated returns the session-wide number of enemies defeated.
func (e *Enemy) Defeated() int64 {
	return e.counters.Defeated()
}

// Created returns the session-wide number of enemies constructed.
func (e *Enemy) Created() int64 {
	return e.counters.Created()
}
