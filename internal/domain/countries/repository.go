package countries

import (
	"context"

	"creature-reviews/internal/domain/owners"
)

type Repository interface {
	List(ctx context.Context) ([]Country, error)
	GetByID(ctx context.Context, id int64) (Country, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c Country) (Country, error)
	Update(ctx context.Context, c Country) error
	// Delete falla con storage.ErrConflict si el país todavía tiene owners.
	Delete(ctx context.Context, id int64) error

	OwnersByCountry(ctx context.Context, countryID int64) ([]owners.Owner, error)
	CountryByOwner(ctx context.Context, ownerID int64) (Country, error)
}
