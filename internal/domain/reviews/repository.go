package reviews

import "context"

type Repository interface {
	List(ctx context.Context) ([]Review, error)
	GetByID(ctx context.Context, id int64) (Review, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, r Review) (Review, error)
	// Update reemplaza title, text y rating; las referencias no cambian.
	Update(ctx context.Context, r Review) error
	Delete(ctx context.Context, id int64) error

	ListByCreature(ctx context.Context, creatureID int64) ([]Review, error)
	ListByReviewer(ctx context.Context, reviewerID int64) ([]Review, error)
}
