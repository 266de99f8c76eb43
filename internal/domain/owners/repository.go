package owners

import (
	"context"

	"creature-reviews/internal/domain/creatures"
)

type Repository interface {
	List(ctx context.Context) ([]Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) error
	Delete(ctx context.Context, id int64) error

	CreaturesByOwner(ctx context.Context, ownerID int64) ([]creatures.Creature, error)
	OwnersByCreature(ctx context.Context, creatureID int64) ([]Owner, error)
}
