// Package item provides collectible items that can be placed in rooms and
// used against an enemy's weakness.
package item

import "fmt"

// Item is a named, described object.
//
// Invariant: Name never changes after New.
type Item struct {
	name        string
	description string
}

// New creates an Item with the given name and an empty description.
func New(name string) *Item {
	return &Item{name: name}
}

// Name returns the item's name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's description.
func (i *Item) Description() string {
	return i.description
}

// SetDescription replaces the item's description.
func (i *Item) SetDescription(description string) {
	i.description = description
}

// Describe returns the line shown when the item lies in a room.
//
// Postcondition: Returns "The [<name>] is here - <description>".
func (i *Item) Describe() string {
	return fmt.Sprintf("The [%s] is here - %s", i.name, i.description)
}

// Equal reports whether i and other hold the same name and description.
//
// Postcondition: two nil items are equal; a nil and a non-nil item are not.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return *i == *other
}
