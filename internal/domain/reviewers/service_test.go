package reviewers

import (
	"context"
	"errors"
	"testing"

	"creature-reviews/internal/domain/reviews"
	"creature-reviews/internal/ports/storage"
)

type testRepo struct {
	byID   map[int64]Reviewer
	nextID int64
}

func (r *testRepo) List(ctx context.Context) ([]Reviewer, error) {
	out := make([]Reviewer, 0, len(r.byID))
	for _, rv := range r.byID {
		out = append(out, rv)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Reviewer, error) {
	rv, ok := r.byID[id]
	if !ok {
		return Reviewer{}, storage.ErrNotFound
	}
	return rv, nil
}

func (r *testRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *testRepo) Create(ctx context.Context, rv Reviewer) (Reviewer, error) {
	r.nextID++
	rv.ID = r.nextID
	r.byID[rv.ID] = rv
	return rv, nil
}

func (r *testRepo) Update(ctx context.Context, rv Reviewer) error {
	r.byID[rv.ID] = rv
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type reviewsRepo struct{ items []reviews.Review }

func (r *reviewsRepo) List(ctx context.Context) ([]reviews.Review, error) { return r.items, nil }
func (r *reviewsRepo) GetByID(ctx context.Context, id int64) (reviews.Review, error) {
	return reviews.Review{}, storage.ErrNotFound
}
func (r *reviewsRepo) Exists(ctx context.Context, id int64) (bool, error) { return false, nil }
func (r *reviewsRepo) Create(ctx context.Context, rv reviews.Review) (reviews.Review, error) {
	r.items = append(r.items, rv)
	return rv, nil
}
func (r *reviewsRepo) Update(ctx context.Context, rv reviews.Review) error { return nil }
func (r *reviewsRepo) Delete(ctx context.Context, id int64) error         { return nil }
func (r *reviewsRepo) ListByCreature(ctx context.Context, id int64) ([]reviews.Review, error) {
	return nil, nil
}
func (r *reviewsRepo) ListByReviewer(ctx context.Context, id int64) ([]reviews.Review, error) {
	var out []reviews.Review
	for _, rv := range r.items {
		if rv.ReviewerID == id {
			out = append(out, rv)
		}
	}
	return out, nil
}

func TestReviewerLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{byID: map[int64]Reviewer{}}
	rr := &reviewsRepo{}
	svc := NewService(repo, reviews.NewService(rr, existerFunc(func(context.Context, int64) (bool, error) {
		return true, nil
	}), repo))

	a, err := svc.Create(ctx, " Oak ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Name != "Oak" {
		t.Fatalf("expected trimmed name, got %q", a.Name)
	}
	// nombres repetidos permitidos
	if _, err := svc.Create(ctx, "oak"); err != nil {
		t.Fatalf("duplicate reviewer names are allowed: %v", err)
	}

	rr.items = append(rr.items, reviews.Review{ID: 1, Title: "t", Rating: 5, ReviewerID: a.ID})
	got, err := svc.Reviews(ctx, a.ID)
	if err != nil || len(got) != 1 {
		t.Fatalf("reviews: %v %+v", err, got)
	}
	if _, err := svc.Reviews(ctx, 99); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.Update(ctx, Reviewer{ID: a.ID, Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type existerFunc func(ctx context.Context, id int64) (bool, error)

func (f existerFunc) Exists(ctx context.Context, id int64) (bool, error) { return f(ctx, id) }
