package reviewers

import "context"

type Repository interface {
	List(ctx context.Context) ([]Reviewer, error)
	GetByID(ctx context.Context, id int64) (Reviewer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, r Reviewer) (Reviewer, error)
	Update(ctx context.Context, r Reviewer) error
	// Delete borra también sus reviews (cascade).
	Delete(ctx context.Context, id int64) error
}
