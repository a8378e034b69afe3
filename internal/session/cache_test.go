package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomkeep/phantomkeep/internal/kdf"
)

func TestCache_PutGet(t *testing.T) {
	c := New(0, nil)
	defer c.Close()

	c.Put(kdf.Primary, []byte{1, 2, 3})

	got, ok := c.Get(kdf.Primary)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)

	_, ok = c.Get(kdf.Phantom)
	assert.False(t, ok)
}

func TestCache_GetReturnsIndependentCopy(t *testing.T) {
	c := New(0, nil)
	defer c.Close()

	c.Put(kdf.Primary, []byte{9, 9, 9})

	a, ok := c.Get(kdf.Primary)
	require.True(t, ok)
	a[0] = 0

	b, ok := c.Get(kdf.Primary)
	require.True(t, ok)
	assert.Equal(t, []byte{9, 9, 9}, b)
}

func TestCache_PutCopiesInput(t *testing.T) {
	c := New(0, nil)
	defer c.Close()

	key := []byte{5, 5, 5}
	c.Put(kdf.Primary, key)
	key[0] = 0

	got, ok := c.Get(kdf.Primary)
	require.True(t, ok)
	assert.Equal(t, []byte{5, 5, 5}, got)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New(time.Minute, nil)
	defer c.Close()

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Put(kdf.Primary, []byte{1})

	_, ok := c.Get(kdf.Primary)
	require.True(t, ok)

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok = c.Get(kdf.Primary)
	assert.False(t, ok)
}

func TestCache_DropWipesEntry(t *testing.T) {
	c := New(0, nil)
	defer c.Close()

	stored := []byte{7, 7, 7}
	c.Put(kdf.Primary, stored)

	// reach inside: Drop must zero the cache's own buffer
	internal := c.keys[kdf.Primary]
	c.Drop(kdf.Primary)

	assert.Equal(t, []byte{0, 0, 0}, internal)
	_, ok := c.Get(kdf.Primary)
	assert.False(t, ok)
}

func TestCache_CloseWipesAndDisables(t *testing.T) {
	c := New(0, nil)

	c.Put(kdf.Primary, []byte{1})
	c.Put(kdf.Phantom, []byte{2})
	internalP := c.keys[kdf.Primary]
	internalF := c.keys[kdf.Phantom]

	c.Close()

	assert.Equal(t, []byte{0}, internalP)
	assert.Equal(t, []byte{0}, internalF)

	_, ok := c.Get(kdf.Primary)
	assert.False(t, ok)

	// Put after Close is a no-op
	c.Put(kdf.Primary, []byte{3})
	_, ok = c.Get(kdf.Primary)
	assert.False(t, ok)

	// double Close is safe
	c.Close()
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New(0, nil)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c.Put(kdf.Primary, []byte{byte(i), byte(j)})
				c.Get(kdf.Primary)
				c.Drop(kdf.Phantom)
			}
		}(i)
	}
	wg.Wait()
}
