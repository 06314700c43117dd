// Package alloc provides allocation bookkeeping for configuration resources.
//
// The string cache and the entry store report every allocation and release to a
// Tracker, so a host or a test can verify that one teardown returns everything a
// load acquired, on the success and on the failure path alike.
package alloc

import "sync"

// Resource kinds reported by the loader.
const (
	KindBlock = "cache.block"
	KindStore = "store.table"
)

// Tracker receives allocation events. n is the number of bytes (for blocks) or
// units (for tables) acquired or freed.
type Tracker interface {
	Acquire(kind string, n int)
	Free(kind string, n int)
}

// Nop is a Tracker that ignores every event.
type Nop struct{}

// Acquire implements Tracker.
func (Nop) Acquire(string, int) {}

// Free implements Tracker.
func (Nop) Free(string, int) {}

// Counter is a Tracker that keeps live counts per kind. It is safe for concurrent use.
type Counter struct {
	mu       sync.Mutex
	live     map[string]int
	acquired int
	freed    int
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{live: make(map[string]int)}
}

// Acquire implements Tracker.
func (c *Counter) Acquire(kind string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.live[kind] += n
	c.acquired++
}

// Free implements Tracker.
func (c *Counter) Free(kind string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.live[kind] -= n
	c.freed++
}

// Live returns the sum of live amounts across all kinds.
func (c *Counter) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, n := range c.live {
		total += n
	}

	return total
}

// LiveOf returns the live amount of a single kind.
func (c *Counter) LiveOf(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.live[kind]
}

// Events returns how many Acquire and Free calls were observed.
func (c *Counter) Events() (acquired, freed int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.acquired, c.freed
}
