// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package cache provides a small thread-safe TTL cache.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	storedAt  time.Time
	expiresAt time.Time
}

// Stats tracks cache performance.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Keys      int
}

// TTL is a map whose entries expire after a fixed duration.
// Expired entries are dropped lazily on access or by Cleanup.
type TTL[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	now     func() time.Time

	hits, misses, evictions int64
}

// New creates a cache whose entries live for ttl.
func New[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (c *TTL[K, V]) WithClock(now func() time.Time) *TTL[K, V] {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
	return c
}

// Get returns the value for key if present and not expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	v, _, ok := c.GetWithAge(key)
	return v, ok
}

// GetWithAge is Get plus the time since the entry was stored.
func (c *TTL[K, V]) GetWithAge(key K) (V, time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, 0, false
	}
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		c.misses++
		c.evictions++
		var zero V
		return zero, 0, false
	}
	c.hits++
	return e.value, now.Sub(e.storedAt), true
}

// Set stores value under key with the default TTL.
func (c *TTL[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *TTL[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = entry[V]{value: value, storedAt: now, expiresAt: now.Add(ttl)}
}

// Delete removes key. Missing keys are ignored.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.evictions++
	}
}

// Cleanup drops all expired entries and returns how many were removed.
func (c *TTL[K, V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	c.evictions += int64(removed)
	return removed
}

// Len returns the number of stored entries, including expired ones not yet
// cleaned up.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *TTL[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Keys:      len(c.entries),
	}
}
