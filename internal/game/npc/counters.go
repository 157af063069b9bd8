package npc

import "sync/atomic"

// Counters tallies enemies across a session. Every Enemy spawned by the same
// Manager shares one Counters.
//
// All methods are safe for concurrent use.
type Counters struct {
	created  atomic.Int64
	defeated atomic.Int64
}

// NewCounters returns Counters with both tallies at zero.
func NewCounters() *Counters {
	return &Counters{}
}

// Created returns the number of enemies constructed so far.
func (c *Counters) Created() int64 {
	return c.created.Load()
}

// Defeated returns the number of successful fights so far.
func (c *Counters) Defeated() int64 {
	return c.defeated.Load()
}

// Reset zeroes both tallies.
func (c *Counters) Reset() {
	c.created.Store(0)
	c.defeated.Store(0)
}
