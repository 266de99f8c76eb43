package sqlstore

import (
	"context"
	"database/sql"

	"creature-reviews/internal/domain/countries"
	"creature-reviews/internal/domain/owners"
	"creature-reviews/internal/ports/storage"
)

type CountriesRepo struct {
	db *sql.DB
}

func NewCountriesRepo(db *sql.DB) *CountriesRepo {
	return &CountriesRepo{db: db}
}

func scanCountry(s scanner) (countries.Country, error) {
	var c countries.Country
	err := s.Scan(&c.ID, &c.Name)
	return c, err
}

func (r *CountriesRepo) List(ctx context.Context) ([]countries.Country, error) {
	return queryList(ctx, r.db, scanCountry, `SELECT id, name FROM countries ORDER BY id`)
}

func (r *CountriesRepo) GetByID(ctx context.Context, id int64) (countries.Country, error) {
	return queryOne(ctx, r.db, scanCountry, `SELECT id, name FROM countries WHERE id = $1`, id)
}

func (r *CountriesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "countries", id)
}

func (r *CountriesRepo) Create(ctx context.Context, c countries.Country) (countries.Country, error) {
	b := newBatch(r.db)
	b.insert("insert country", &c.ID, `INSERT INTO countries (name, name_key) VALUES ($1, $2) RETURNING id`, c.Name, storage.NameKey(c.Name))
	if err := b.Commit(ctx); err != nil {
		return countries.Country{}, err
	}
	return c, nil
}

func (r *CountriesRepo) Update(ctx context.Context, c countries.Country) error {
	b := newBatch(r.db)
	b.exec("update country", nil, `UPDATE countries SET name = $2, name_key = $3 WHERE id = $1`, c.ID, c.Name, storage.NameKey(c.Name))
	return b.Commit(ctx)
}

// Delete falla con storage.ErrConflict mientras haya owners del país (ON DELETE RESTRICT).
func (r *CountriesRepo) Delete(ctx context.Context, id int64) error {
	b := newBatch(r.db)
	b.exec("delete country", nil, `DELETE FROM countries WHERE id = $1`, id)
	return b.Commit(ctx)
}

func (r *CountriesRepo) OwnersByCountry(ctx context.Context, countryID int64) ([]owners.Owner, error) {
	return queryList(ctx, r.db, scanOwner, `
		SELECT id, name, gym, country_id
		FROM owners
		WHERE country_id = $1
		ORDER BY id
	`, countryID)
}

func (r *CountriesRepo) CountryByOwner(ctx context.Context, ownerID int64) (countries.Country, error) {
	return queryOne(ctx, r.db, scanCountry, `
		SELECT c.id, c.name
		FROM countries c
		JOIN owners o ON o.country_id = c.id
		WHERE o.id = $1
	`, ownerID)
}
