package sqlstore

import (
	"context"
	"database/sql"

	"creature-reviews/internal/domain/categories"
	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/ports/storage"
)

type CategoriesRepo struct {
	db *sql.DB
}

func NewCategoriesRepo(db *sql.DB) *CategoriesRepo {
	return &CategoriesRepo{db: db}
}

func scanCategory(s scanner) (categories.Category, error) {
	var c categories.Category
	err := s.Scan(&c.ID, &c.Name)
	return c, err
}

func (r *CategoriesRepo) List(ctx context.Context) ([]categories.Category, error) {
	return queryList(ctx, r.db, scanCategory, `SELECT id, name FROM categories ORDER BY id`)
}

func (r *CategoriesRepo) GetByID(ctx context.Context, id int64) (categories.Category, error) {
	return queryOne(ctx, r.db, scanCategory, `SELECT id, name FROM categories WHERE id = $1`, id)
}

func (r *CategoriesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "categories", id)
}

func (r *CategoriesRepo) Create(ctx context.Context, c categories.Category) (categories.Category, error) {
	b := newBatch(r.db)
	b.insert("insert category", &c.ID, `INSERT INTO categories (name, name_key) VALUES ($1, $2) RETURNING id`, c.Name, storage.NameKey(c.Name))
	if err := b.Commit(ctx); err != nil {
		return categories.Category{}, err
	}
	return c, nil
}

func (r *CategoriesRepo) Update(ctx context.Context, c categories.Category) error {
	b := newBatch(r.db)
	b.exec("update category", nil, `UPDATE categories SET name = $2, name_key = $3 WHERE id = $1`, c.ID, c.Name, storage.NameKey(c.Name))
	return b.Commit(ctx)
}

func (r *CategoriesRepo) Delete(ctx context.Context, id int64) error {
	b := newBatch(r.db)
	b.exec("delete category", nil, `DELETE FROM categories WHERE id = $1`, id)
	return b.Commit(ctx)
}

func (r *CategoriesRepo) CreaturesByCategory(ctx context.Context, categoryID int64) ([]creatures.Creature, error) {
	return queryList(ctx, r.db, scanCreature, `
		SELECT c.id, c.name, c.birth_date
		FROM creatures c
		JOIN creature_categories cc ON cc.creature_id = c.id
		WHERE cc.category_id = $1
		ORDER BY c.id
	`, categoryID)
}
