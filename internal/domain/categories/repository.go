package categories

import (
	"context"

	"creature-reviews/internal/domain/creatures"
)

// Lister es la única lectura que pasa por cache.
type Lister interface {
	List(ctx context.Context) ([]Category, error)
}

type Repository interface {
	Lister
	GetByID(ctx context.Context, id int64) (Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c Category) (Category, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id int64) error

	CreaturesByCategory(ctx context.Context, categoryID int64) ([]creatures.Creature, error)
}
