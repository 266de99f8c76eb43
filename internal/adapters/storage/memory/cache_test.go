package memory

import (
	"context"
	"testing"
	"time"

	"creature-reviews/internal/ports/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache() (*Cache, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewCache(WithClock(clk.Now)), clk
}

var categoryOpts = cache.EntryOptions{Absolute: time.Minute, Sliding: 10 * time.Second}

func TestCache_SlidingExpiresWithoutReads(t *testing.T) {
	ctx := context.Background()
	c, clk := newTestCache()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), categoryOpts))

	clk.Advance(9 * time.Second)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok, "read inside sliding window")

	clk.Advance(10 * time.Second)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "10s without reads expires the entry")
}

func TestCache_AbsoluteBoundsSlidingRefresh(t *testing.T) {
	ctx := context.Background()
	c, clk := newTestCache()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), categoryOpts))

	// una lectura cada 9s mantiene viva la entrada hasta el límite absoluto
	for elapsed := 9 * time.Second; elapsed < time.Minute; elapsed += 9 * time.Second {
		clk.Advance(9 * time.Second)
		_, ok, _ := c.Get(ctx, "k")
		require.True(t, ok, "expected hit at %s", elapsed)
	}

	clk.Advance(7 * time.Second) // 61s desde el Set
	_, ok, _ := c.Get(ctx, "k")
	assert.False(t, ok, "absolute expiration wins over sliding refresh")
}

func TestCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	src := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", src, cache.EntryOptions{}))
	src[0] = 'x'

	got, ok, _ := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestCache_Remove(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), categoryOpts))
	require.NoError(t, c.Remove(ctx, "k"))

	_, ok, _ := c.Get(ctx, "k")
	assert.False(t, ok)
}
