// Package rediscache implementa cache.Cache sobre Redis, compartido entre réplicas.
//
// Cada clave es un hash {data, absexp, sldexp}: absexp es el vencimiento
// absoluto en unix ms y sldexp la ventana sliding en ms (-1 si no aplica).
// El TTL de Redis se fija en min(sliding, lo que falte para absexp) y se
// renueva en cada lectura.
package rediscache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"creature-reviews/internal/ports/cache"

	"github.com/redis/go-redis/v9"
)

const (
	fieldData     = "data"
	fieldAbsolute = "absexp"
	fieldSliding  = "sldexp"

	notSet = int64(-1)
)

type Cache struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

type Option func(*Cache)

func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

func New(client redis.UniversalClient, opts ...Option) *Cache {
	c := &Cache{client: client, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

var _ cache.Cache = (*Cache)(nil)

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	k := c.prefix + key

	vals, err := c.client.HMGet(ctx, k, fieldData, fieldAbsolute, fieldSliding).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis cache get %q: %w", key, err)
	}
	data, ok := vals[0].(string)
	if !ok {
		return nil, false, nil
	}
	abs := parseMillis(vals[1])
	sld := parseMillis(vals[2])

	now := c.now()
	if abs != notSet && now.UnixMilli() >= abs {
		_ = c.client.Del(ctx, k).Err()
		return nil, false, nil
	}

	if sld != notSet {
		if err := c.client.PExpire(ctx, k, ttl(now, abs, sld)).Err(); err != nil {
			return nil, false, fmt.Errorf("redis cache refresh %q: %w", key, err)
		}
	}
	return []byte(data), true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, opts cache.EntryOptions) error {
	k := c.prefix + key
	now := c.now()

	abs, sld := notSet, notSet
	if opts.Absolute > 0 {
		abs = now.Add(opts.Absolute).UnixMilli()
	}
	if opts.Sliding > 0 {
		sld = opts.Sliding.Milliseconds()
	}
	expire := ttl(now, abs, sld)

	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, k, fieldData, value, fieldAbsolute, abs, fieldSliding, sld)
		if expire > 0 {
			p.PExpire(ctx, k, expire)
		} else {
			p.Persist(ctx, k)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis cache set %q: %w", key, err)
	}
	return nil
}

func (c *Cache) Remove(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis cache remove %q: %w", key, err)
	}
	return nil
}

// ttl devuelve el TTL a fijar en Redis; 0 si la entrada no vence.
func ttl(now time.Time, abs, sld int64) time.Duration {
	var out time.Duration
	if sld != notSet {
		out = time.Duration(sld) * time.Millisecond
	}
	if abs != notSet {
		remaining := time.Duration(abs-now.UnixMilli()) * time.Millisecond
		if out == 0 || remaining < out {
			out = remaining
		}
		if out <= 0 {
			// vencida: el mínimo que Redis acepta
			out = time.Millisecond
		}
	}
	return out
}

func parseMillis(v any) int64 {
	s, ok := v.(string)
	if !ok {
		return notSet
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return notSet
	}
	return n
}
