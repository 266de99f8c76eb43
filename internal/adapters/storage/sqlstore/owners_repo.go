package sqlstore

import (
	"context"
	"database/sql"

	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/domain/owners"
	"creature-reviews/internal/ports/storage"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func scanOwner(s scanner) (owners.Owner, error) {
	var o owners.Owner
	err := s.Scan(&o.ID, &o.Name, &o.Gym, &o.CountryID)
	return o, err
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	return queryList(ctx, r.db, scanOwner, `SELECT id, name, gym, country_id FROM owners ORDER BY id`)
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	return queryOne(ctx, r.db, scanOwner, `SELECT id, name, gym, country_id FROM owners WHERE id = $1`, id)
}

func (r *OwnersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "owners", id)
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	b := newBatch(r.db)
	b.requireRow("countries", "country", o.CountryID)
	b.insert("insert owner", &o.ID,
		`INSERT INTO owners (name, name_key, gym, country_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		o.Name, storage.NameKey(o.Name), o.Gym, o.CountryID)
	if err := b.Commit(ctx); err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	b := newBatch(r.db)
	b.exec("update owner", storage.ErrInvalidReference,
		`UPDATE owners SET name = $2, name_key = $3, gym = $4, country_id = $5 WHERE id = $1`,
		o.ID, o.Name, storage.NameKey(o.Name), o.Gym, o.CountryID)
	return b.Commit(ctx)
}

// Delete borra también las filas de creature_owners (cascade).
func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	b := newBatch(r.db)
	b.exec("delete owner", nil, `DELETE FROM owners WHERE id = $1`, id)
	return b.Commit(ctx)
}

func (r *OwnersRepo) CreaturesByOwner(ctx context.Context, ownerID int64) ([]creatures.Creature, error) {
	return queryList(ctx, r.db, scanCreature, `
		SELECT c.id, c.name, c.birth_date
		FROM creatures c
		JOIN creature_owners co ON co.creature_id = c.id
		WHERE co.owner_id = $1
		ORDER BY c.id
	`, ownerID)
}

func (r *OwnersRepo) OwnersByCreature(ctx context.Context, creatureID int64) ([]owners.Owner, error) {
	return queryList(ctx, r.db, scanOwner, `
		SELECT o.id, o.name, o.gym, o.country_id
		FROM owners o
		JOIN creature_owners co ON co.owner_id = o.id
		WHERE co.creature_id = $1
		ORDER BY o.id
	`, creatureID)
}
