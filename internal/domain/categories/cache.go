package categories

import (
	"context"
	"encoding/json"
	"time"

	"creature-reviews/internal/platform/logger"
	"creature-reviews/internal/ports/cache"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ListCacheKey = "categories:all"

	DefaultAbsoluteExpiration = time.Minute
	DefaultSlidingExpiration  = 10 * time.Second

	cacheName = "categories"
)

// Resultados de lectura del cache.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

type CacheRecorder interface {
	CacheResult(cache, result string)
}

type nopRecorder struct{}

func (nopRecorder) CacheResult(string, string) {}

// CachedLister es un read-through sobre Lister.List con una única clave.
// Las escrituras de categories no lo invalidan: una entrada puede quedar vieja
// hasta que vence (sliding sin lecturas, o absoluto desde que se escribió).
type CachedLister struct {
	next   Lister
	cache  cache.Cache
	opts   cache.EntryOptions
	log    logger.Logger
	rec    CacheRecorder
	tracer trace.Tracer
}

type CachedListerOption func(*CachedLister)

func WithExpiration(opts cache.EntryOptions) CachedListerOption {
	return func(l *CachedLister) {
		if opts.Absolute > 0 {
			l.opts.Absolute = opts.Absolute
		}
		if opts.Sliding > 0 {
			l.opts.Sliding = opts.Sliding
		}
	}
}

func WithLogger(log logger.Logger) CachedListerOption {
	return func(l *CachedLister) {
		if log != nil {
			l.log = log
		}
	}
}

func WithRecorder(rec CacheRecorder) CachedListerOption {
	return func(l *CachedLister) {
		if rec != nil {
			l.rec = rec
		}
	}
}

func NewCachedLister(next Lister, c cache.Cache, opts ...CachedListerOption) *CachedLister {
	l := &CachedLister{
		next:  next,
		cache: c,
		opts: cache.EntryOptions{
			Absolute: DefaultAbsoluteExpiration,
			Sliding:  DefaultSlidingExpiration,
		},
		log:    logger.Nop(),
		rec:    nopRecorder{},
		tracer: otel.Tracer("creature-reviews/categories"),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// List devuelve el listado cacheado o lo lee de next y lo guarda.
// Un fallo del cache no corta la lectura: se loguea y se va directo a next.
func (l *CachedLister) List(ctx context.Context) ([]Category, error) {
	ctx, span := l.tracer.Start(ctx, "categories.CachedLister.List",
		trace.WithAttributes(attribute.String("cache.key", ListCacheKey)))
	defer span.End()

	log := logger.WithContext(ctx, l.log).With(map[string]any{"cache": cacheName, "key": ListCacheKey})

	raw, ok, err := l.cache.Get(ctx, ListCacheKey)
	switch {
	case err != nil:
		l.rec.CacheResult(cacheName, CacheError)
		span.RecordError(err)
		log.Warn("cache read failed", map[string]any{"err": err})
	case ok:
		var items []Category
		decodeErr := json.Unmarshal(raw, &items)
		if decodeErr == nil {
			l.rec.CacheResult(cacheName, CacheHit)
			span.SetAttributes(attribute.String("cache.result", CacheHit))
			return items, nil
		}
		l.rec.CacheResult(cacheName, CacheError)
		log.Warn("cache entry undecodable", map[string]any{"err": decodeErr})
	default:
		l.rec.CacheResult(cacheName, CacheMiss)
		log.Debug("cache miss", nil)
	}
	span.SetAttributes(attribute.String("cache.result", CacheMiss))

	items, err := l.next.List(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	b, err := json.Marshal(items)
	if err != nil {
		log.Warn("cache encode failed", map[string]any{"err": err})
		return items, nil
	}
	if err := l.cache.Set(ctx, ListCacheKey, b, l.opts); err != nil {
		span.RecordError(err)
		log.Warn("cache write failed", map[string]any{"err": err})
	}
	return items, nil
}
