package sqlstore

import (
	"context"
	"database/sql"

	"creature-reviews/internal/domain/reviews"
)

type ReviewsRepo struct {
	db *sql.DB
}

func NewReviewsRepo(db *sql.DB) *ReviewsRepo {
	return &ReviewsRepo{db: db}
}

const reviewColumns = `id, title, body, rating, creature_id, reviewer_id`

func scanReview(s scanner) (reviews.Review, error) {
	var rv reviews.Review
	err := s.Scan(&rv.ID, &rv.Title, &rv.Text, &rv.Rating, &rv.CreatureID, &rv.ReviewerID)
	return rv, err
}

func (r *ReviewsRepo) List(ctx context.Context) ([]reviews.Review, error) {
	return queryList(ctx, r.db, scanReview, `SELECT `+reviewColumns+` FROM reviews ORDER BY id`)
}

func (r *ReviewsRepo) GetByID(ctx context.Context, id int64) (reviews.Review, error) {
	return queryOne(ctx, r.db, scanReview, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
}

func (r *ReviewsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "reviews", id)
}

func (r *ReviewsRepo) Create(ctx context.Context, rv reviews.Review) (reviews.Review, error) {
	b := newBatch(r.db)
	b.requireRow("creatures", "creature", rv.CreatureID)
	b.requireRow("reviewers", "reviewer", rv.ReviewerID)
	b.insert("insert review", &rv.ID, `
		INSERT INTO reviews (title, body, rating, creature_id, reviewer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, rv.Title, rv.Text, rv.Rating, rv.CreatureID, rv.ReviewerID)
	if err := b.Commit(ctx); err != nil {
		return reviews.Review{}, err
	}
	return rv, nil
}

func (r *ReviewsRepo) Update(ctx context.Context, rv reviews.Review) error {
	b := newBatch(r.db)
	b.exec("update review", nil,
		`UPDATE reviews SET title = $2, body = $3, rating = $4 WHERE id = $1`,
		rv.ID, rv.Title, rv.Text, rv.Rating)
	return b.Commit(ctx)
}

func (r *ReviewsRepo) Delete(ctx context.Context, id int64) error {
	b := newBatch(r.db)
	b.exec("delete review", nil, `DELETE FROM reviews WHERE id = $1`, id)
	return b.Commit(ctx)
}

func (r *ReviewsRepo) ListByCreature(ctx context.Context, creatureID int64) ([]reviews.Review, error) {
	return queryList(ctx, r.db, scanReview,
		`SELECT `+reviewColumns+` FROM reviews WHERE creature_id = $1 ORDER BY id`, creatureID)
}

func (r *ReviewsRepo) ListByReviewer(ctx context.Context, reviewerID int64) ([]reviews.Review, error) {
	return queryList(ctx, r.db, scanReview,
		`SELECT `+reviewColumns+` FROM reviews WHERE reviewer_id = $1 ORDER BY id`, reviewerID)
}
