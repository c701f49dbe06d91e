// Package cache provides process-local read-through caches with expiry.
package cache

import (
	"sync"
	"time"
)

// Cache is the contract the services depend on
type Cache[K comparable, V any] interface {
	// Get returns the value for key if present and not expired
	Get(key K) (V, bool)
	// Set stores value under key for the cache's TTL
	Set(key K, value V)
	// Delete removes key
	Delete(key K)
	// Clear removes every entry
	Clear()
	// Expire drops expired entries and returns how many were removed
	Expire() int
}

// Clock is the time source used for expiry
type Clock interface {
	Now() time.Time
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a mutex-guarded map whose entries expire after a fixed duration
type TTL[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   Clock
	entries map[K]entry[V]
}

// NewTTL creates a cache whose entries live for ttl on the given clock
func NewTTL[K comparable, V any](ttl time.Duration, clock Clock) *TTL[K, V] {
	return &TTL[K, V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[K]entry[V]),
	}
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]entry[V])
}

func (c *TTL[K, V]) Expire() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, including expired ones not yet swept
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
