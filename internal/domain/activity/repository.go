package activity

import "context"

type Repository interface {
	// List es un full scan de la colección.
	List(ctx context.Context) ([]Entry, error)
	// Create todavía no está implementado en ningún backend: devuelve storage.ErrNotImplemented.
	Create(ctx context.Context, e Entry) error
}
