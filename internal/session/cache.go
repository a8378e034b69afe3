// Package session provides an explicitly scoped cache for derived keys, so
// a caller can pay the key-stretching cost once per session instead of on
// every operation.
//
// The cache is the only piece of the engine that outlives a single call,
// and its lifetime is bounded on purpose: keys expire after the configured
// TTL and everything is wiped on Close. It never logs key material and
// never logs which vault a key belongs to.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/phantomkeep/phantomkeep/internal/kdf"
	"github.com/phantomkeep/phantomkeep/internal/logging"
	"github.com/phantomkeep/phantomkeep/internal/shared"
)

// Cache holds derived keys per vault type for the duration of one session.
// Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	keys    map[kdf.VaultType][]byte
	expires map[kdf.VaultType]time.Time
	ttl     time.Duration
	closed  bool
	log     logging.Logger
	now     func() time.Time
}

// New creates a cache whose entries live at most ttl. A zero ttl means
// entries live until Drop or Close.
func New(ttl time.Duration, log logging.Logger) *Cache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Cache{
		keys:    make(map[kdf.VaultType][]byte),
		expires: make(map[kdf.VaultType]time.Time),
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

// Put stores a copy of key for the given vault type, replacing and wiping
// any previous entry.
func (c *Cache) Put(vt kdf.VaultType, key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.dropLocked(vt)
	c.keys[vt] = shared.CopyBytes(key)
	if c.ttl > 0 {
		c.expires[vt] = c.now().Add(c.ttl)
	}
}

// Get returns a copy of the cached key for the given vault type. An expired
// entry is wiped and reported as a miss. The caller owns the returned copy
// and must wipe it after use.
func (c *Cache) Get(vt kdf.VaultType) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, ok := c.keys[vt]
	if !ok {
		return nil, false
	}
	if exp, has := c.expires[vt]; has && c.now().After(exp) {
		c.dropLocked(vt)
		c.log.Debug(context.Background(), "session key expired")
		return nil, false
	}
	return shared.CopyBytes(key), true
}

// Drop wipes and removes the entry for the given vault type, if any.
func (c *Cache) Drop(vt kdf.VaultType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropLocked(vt)
}

// Close wipes every cached key and makes the cache permanently empty.
// Further Puts are ignored.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	n := len(c.keys)
	for vt := range c.keys {
		c.dropLocked(vt)
	}
	c.closed = true
	c.log.Debug(context.Background(), "session key cache closed", "held_keys", n)
}

func (c *Cache) dropLocked(vt kdf.VaultType) {
	if key, ok := c.keys[vt]; ok {
		shared.WipeBytes(key)
		delete(c.keys, vt)
	}
	delete(c.expires, vt)
}
