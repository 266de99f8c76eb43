package creatures

import "context"

type Repository interface {
	List(ctx context.Context) ([]Creature, error)
	GetByID(ctx context.Context, id int64) (Creature, error)
	GetByName(ctx context.Context, name string) (Creature, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// Create guarda la criatura y sus filas de asociación (owner y category) en un único commit.
	Create(ctx context.Context, ownerID, categoryID int64, c Creature) (Creature, error)
	// Update reemplaza solo los campos escalares; las asociaciones no se tocan.
	Update(ctx context.Context, c Creature) error
	Delete(ctx context.Context, id int64) error

	// RatingStats devuelve suma y cantidad de ratings de las reviews de la criatura.
	RatingStats(ctx context.Context, id int64) (sum, count int64, err error)
}
