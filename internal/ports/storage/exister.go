package storage

import (
	"context"
	"fmt"
)

// Exister lo implementan los repos que permiten resolver una referencia por id.
type Exister interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// RequireReference devuelve ErrInvalidReference si id no existe en e.
func RequireReference(ctx context.Context, e Exister, what string, id int64) error {
	ok, err := e.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", what, id, ErrInvalidReference)
	}
	return nil
}

// RequireFound devuelve ErrNotFound si id no existe en e.
func RequireFound(ctx context.Context, e Exister, id int64) error {
	ok, err := e.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
