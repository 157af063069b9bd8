package main

import (
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// route is the fixed path the walkthrough follows. The leading "up" walks
// into a wall.
var route = []world.Direction{world.Up, world.South, world.West, world.East, world.North}

// buildWorld populates sess with the Kitchen, Dining Hall and Ballroom.
func buildWorld(sess *session.Session) {
	w := sess.World()

	kitchen := w.NewRoom("Kitchen")
	kitchen.SetDescription("A dank and dirty room buzzing with flies.")

	diningHall := w.NewRoom("Dining Hall")
	diningHall.SetDescription("A large room with ornate golden decorations on each wall.")

	ballroom := w.NewRoom("Ballroom")
	ballroom.SetDescription("A vast room with a shiny wooden floor. Huge candlesticks guard the entrance.")

	linkBoth(kitchen, diningHall, world.South)
	linkBoth(diningHall, ballroom, world.West)

	dave := sess.NPCs().Spawn("Dave", "A smelly zombie")
	dave.SetConversation("What's up, dude! I'm hungry.")
	dave.SetWeakness("cheese")
	diningHall.SetCharacter(dave)

	tabitha := sess.NPCs().Spawn("Tabitha", "An enormous spider with countless eyes and furry legs.")
	tabitha.SetConversation("Sssss....I'm so bored...")
	tabitha.SetWeakness("book")
	ballroom.SetCharacter(tabitha)

	cheese := item.New("cheese")
	cheese.SetDescription("A large and smelly block of cheese")
	kitchen.SetItem(cheese)

	book := item.New("book")
	book.SetDescription("A really good book entitled 'Knitting for dummies'")
	ballroom.SetItem(book)
}

// linkBoth links from to to along dir and, when dir has an opposite, links
// to back to from. Custom labels get the forward link only.
func linkBoth(from, to *world.Room, dir world.Direction) {
	from.Link(to, dir)
	if back, ok := dir.Opposite(); ok {
		to.Link(from, back)
	}
}
