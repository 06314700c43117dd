// Package cache implements the append-only string arena that owns every value
// of a loaded configuration.
//
// Strings are copied into fixed-size blocks. A block is never resized once
// allocated, so a Handle stays valid until Release drops all blocks at once.
package cache

import (
	"unsafe"

	"github.com/0xalexb/hjarta-conf/config/alloc"
)

// DefaultBlockSize is the capacity of a regular arena block in bytes.
const DefaultBlockSize = 4096

// Handle references a string owned by a Cache.
// The zero Handle refers to the empty string.
type Handle struct {
	block int
	off   int
	n     int
}

// Len returns the length in bytes of the referenced string.
func (h Handle) Len() int {
	return h.n
}

// Stats describes the arena footprint.
type Stats struct {
	Blocks  int
	Bytes   int
	Used    int
	Strings int
}

// Option configures a Cache.
type Option func(*Cache)

// WithBlockSize sets the capacity of regular blocks. Non-positive sizes are ignored.
func WithBlockSize(size int) Option {
	return func(c *Cache) {
		if size > 0 {
			c.blockSize = size
		}
	}
}

// WithTracker reports block allocations and releases to tracker.
func WithTracker(tracker alloc.Tracker) Option {
	return func(c *Cache) {
		if tracker != nil {
			c.tracker = tracker
		}
	}
}

// Cache is a string arena. It is not safe for concurrent writes; concurrent
// String calls are safe once writing has stopped.
type Cache struct {
	blocks    [][]byte
	current   int
	blockSize int
	strings   int
	tracker   alloc.Tracker
}

// New creates an empty Cache. No memory is allocated until the first Duplicate.
func New(opts ...Option) *Cache {
	c := &Cache{
		blocks:    nil,
		current:   -1,
		blockSize: DefaultBlockSize,
		strings:   0,
		tracker:   alloc.Nop{},
	}

	for _, apply := range opts {
		apply(c)
	}

	return c
}

// Duplicate copies s into the arena.
func (c *Cache) Duplicate(s string) Handle {
	return c.put(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// DuplicateBytes copies b into the arena.
func (c *Cache) DuplicateBytes(b []byte) Handle {
	return c.put(b)
}

func (c *Cache) put(b []byte) Handle {
	if len(b) == 0 {
		c.strings++

		return Handle{}
	}

	idx := c.reserve(len(b))
	block := c.blocks[idx]
	off := len(block)
	c.blocks[idx] = append(block, b...)
	c.strings++

	return Handle{block: idx, off: off, n: len(b)}
}

// reserve returns the index of a block with at least n free bytes.
func (c *Cache) reserve(n int) int {
	if n > c.blockSize {
		// Oversize strings get a dedicated block; the current block stays open.
		return c.grow(n)
	}

	if c.current >= 0 {
		block := c.blocks[c.current]
		if cap(block)-len(block) >= n {
			return c.current
		}
	}

	c.current = c.grow(c.blockSize)

	return c.current
}

func (c *Cache) grow(size int) int {
	c.blocks = append(c.blocks, make([]byte, 0, size))
	c.tracker.Acquire(alloc.KindBlock, size)

	return len(c.blocks) - 1
}

// String returns the string referenced by h. The result aliases arena memory and
// must not be used to derive mutable byte slices. Handles from a released Cache
// yield the empty string.
func (c *Cache) String(h Handle) string {
	if h.n == 0 || h.block >= len(c.blocks) {
		return ""
	}

	block := c.blocks[h.block]

	return unsafe.String(&block[h.off], h.n)
}

// Stats reports the current footprint.
func (c *Cache) Stats() Stats {
	stats := Stats{Blocks: len(c.blocks), Bytes: 0, Used: 0, Strings: c.strings}

	for _, block := range c.blocks {
		stats.Bytes += cap(block)
		stats.Used += len(block)
	}

	return stats
}

// Release drops every block. It is safe to call more than once.
func (c *Cache) Release() {
	for _, block := range c.blocks {
		c.tracker.Free(alloc.KindBlock, cap(block))
	}

	c.blocks = nil
	c.current = -1
	c.strings = 0
}
