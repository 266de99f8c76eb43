package sqlstore

import (
	"context"
	"database/sql"

	"creature-reviews/internal/domain/reviewers"
)

type ReviewersRepo struct {
	db *sql.DB
}

func NewReviewersRepo(db *sql.DB) *ReviewersRepo {
	return &ReviewersRepo{db: db}
}

func scanReviewer(s scanner) (reviewers.Reviewer, error) {
	var rv reviewers.Reviewer
	err := s.Scan(&rv.ID, &rv.Name)
	return rv, err
}

func (r *ReviewersRepo) List(ctx context.Context) ([]reviewers.Reviewer, error) {
	return queryList(ctx, r.db, scanReviewer, `SELECT id, name FROM reviewers ORDER BY id`)
}

func (r *ReviewersRepo) GetByID(ctx context.Context, id int64) (reviewers.Reviewer, error) {
	return queryOne(ctx, r.db, scanReviewer, `SELECT id, name FROM reviewers WHERE id = $1`, id)
}

func (r *ReviewersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "reviewers", id)
}

func (r *ReviewersRepo) Create(ctx context.Context, rv reviewers.Reviewer) (reviewers.Reviewer, error) {
	b := newBatch(r.db)
	b.insert("insert reviewer", &rv.ID, `INSERT INTO reviewers (name) VALUES ($1) RETURNING id`, rv.Name)
	if err := b.Commit(ctx); err != nil {
		return reviewers.Reviewer{}, err
	}
	return rv, nil
}

func (r *ReviewersRepo) Update(ctx context.Context, rv reviewers.Reviewer) error {
	b := newBatch(r.db)
	b.exec("update reviewer", nil, `UPDATE reviewers SET name = $2 WHERE id = $1`, rv.ID, rv.Name)
	return b.Commit(ctx)
}

func (r *ReviewersRepo) Delete(ctx context.Context, id int64) error {
	b := newBatch(r.db)
	b.exec("delete reviewer", nil, `DELETE FROM reviewers WHERE id = $1`, id)
	return b.Commit(ctx)
}
