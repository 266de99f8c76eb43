package cache

import (
	"context"
	"time"
)

// EntryOptions son los dos vencimientos de una entrada; gana el primero que se cumpla.
// Un valor cero desactiva ese vencimiento.
type EntryOptions struct {
	// Absolute cuenta desde el Set, haya lecturas o no.
	Absolute time.Duration
	// Sliding cuenta desde la última lectura.
	Sliding time.Duration
}

// Cache guarda blobs por clave string. Un Get con hit renueva la ventana sliding.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, opts EntryOptions) error
	Remove(ctx context.Context, key string) error
}
