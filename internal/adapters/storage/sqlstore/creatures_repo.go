package sqlstore

import (
	"context"
	"database/sql"

	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/ports/storage"
)

type CreaturesRepo struct {
	db *sql.DB
}

func NewCreaturesRepo(db *sql.DB) *CreaturesRepo {
	return &CreaturesRepo{db: db}
}

func scanCreature(s scanner) (creatures.Creature, error) {
	var (
		c  creatures.Creature
		bd sql.NullTime
	)
	if err := s.Scan(&c.ID, &c.Name, &bd); err != nil {
		return creatures.Creature{}, err
	}
	c.BirthDate = fromNullDate(bd)
	return c, nil
}

func (r *CreaturesRepo) List(ctx context.Context) ([]creatures.Creature, error) {
	return queryList(ctx, r.db, scanCreature, `SELECT id, name, birth_date FROM creatures ORDER BY id`)
}

func (r *CreaturesRepo) GetByID(ctx context.Context, id int64) (creatures.Creature, error) {
	return queryOne(ctx, r.db, scanCreature, `SELECT id, name, birth_date FROM creatures WHERE id = $1`, id)
}

// GetByName busca por name_key, la misma clave del índice único.
func (r *CreaturesRepo) GetByName(ctx context.Context, name string) (creatures.Creature, error) {
	return queryOne(ctx, r.db, scanCreature, `
		SELECT id, name, birth_date
		FROM creatures
		WHERE name_key = $1
	`, storage.NameKey(name))
}

func (r *CreaturesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "creatures", id)
}

// Create inserta la criatura y sus filas en creature_owners y creature_categories
// en un único commit. Un owner o category inexistente aborta todo con ErrInvalidReference.
func (r *CreaturesRepo) Create(ctx context.Context, ownerID, categoryID int64, c creatures.Creature) (creatures.Creature, error) {
	c.BirthDate = creatures.DateOnly(c.BirthDate)
	b := newBatch(r.db)
	stageCreate(b, ownerID, categoryID, &c)
	if err := b.Commit(ctx); err != nil {
		return creatures.Creature{}, err
	}
	return c, nil
}

func stageCreate(b *Batch, ownerID, categoryID int64, c *creatures.Creature) {
	b.requireRow("owners", "owner", ownerID)
	b.requireRow("categories", "category", categoryID)

	b.insert("insert creature", &c.ID,
		`INSERT INTO creatures (name, name_key, birth_date) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, storage.NameKey(c.Name), toNullDate(c.BirthDate))

	// c.ID se lee al aplicar, después del insert
	b.stage("link owner", storage.ErrInvalidReference, func(ctx context.Context, tx *sql.Tx) (int64, error) {
		return execAffected(ctx, tx,
			`INSERT INTO creature_owners (owner_id, creature_id) VALUES ($1, $2)`, ownerID, c.ID)
	})
	b.stage("link category", storage.ErrInvalidReference, func(ctx context.Context, tx *sql.Tx) (int64, error) {
		return execAffected(ctx, tx,
			`INSERT INTO creature_categories (category_id, creature_id) VALUES ($1, $2)`, categoryID, c.ID)
	})
}

// Update solo toca name y birth_date; las asociaciones quedan como estaban.
func (r *CreaturesRepo) Update(ctx context.Context, c creatures.Creature) error {
	b := newBatch(r.db)
	b.exec("update creature", nil,
		`UPDATE creatures SET name = $2, name_key = $3, birth_date = $4 WHERE id = $1`,
		c.ID, c.Name, storage.NameKey(c.Name), toNullDate(c.BirthDate))
	return b.Commit(ctx)
}

// Delete borra también filas de asociación y reviews (cascade).
func (r *CreaturesRepo) Delete(ctx context.Context, id int64) error {
	b := newBatch(r.db)
	b.exec("delete creature", nil, `DELETE FROM creatures WHERE id = $1`, id)
	return b.Commit(ctx)
}

func (r *CreaturesRepo) RatingStats(ctx context.Context, id int64) (sum, count int64, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(rating), 0), COUNT(*)
		FROM reviews
		WHERE creature_id = $1
	`, id).Scan(&sum, &count)
	return sum, count, err
}
