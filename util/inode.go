package util

import "sync/atomic"

// InodeCounter hands out increasing inode numbers. The zero value is ready to
// use and the first number issued is 1.
type InodeCounter struct {
	highest atomic.Uint64
}

// Next returns a fresh inode number.
func (c *InodeCounter) Next() uint64 {
	return c.highest.Add(1)
}

// Observe raises the counter to at least inode so later numbers never collide
// with one assigned elsewhere.
func (c *InodeCounter) Observe(inode uint64) {
	for {
		cur := c.highest.Load()
		if inode <= cur || c.highest.CompareAndSwap(cur, inode) {
			return
		}
	}
}

// Last returns the most recently issued (or observed) inode number.
func (c *InodeCounter) Last() uint64 {
	return c.highest.Load()
}
