// Package storage holds short-lived in-memory state that is not worth persisting.
package storage

import (
	"solibot/contract"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

var _ contract.Evictor = (*TTLCache[string, int])(nil)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is a generic map whose entries stop being readable after ttl.
//
// Get never returns a stale entry; physical removal is left to EvictExpired,
// driven by the janitor worker.
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	clock   clock.Clock
	entries map[K]entry[V]
	ttl     time.Duration
}

func NewTTLCache[K comparable, V any](clk clock.Clock, ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{
		clock:   clk,
		entries: make(map[K]entry[V]),
		ttl:     ttl,
	}
}

func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.clock.Now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value and restarts its time to live.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

// Take returns and removes a live entry in one step.
// A stale entry is removed too, but reported as missing.
func (c *TTLCache[K, V]) Take(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	delete(c.entries, key)
	if !c.clock.Now().Before(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

func (c *TTLCache[K, V]) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	evicted := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}
