package activity

import (
	"context"
	"errors"
	"testing"

	"creature-reviews/internal/ports/storage"
)

type testRepo struct {
	entries []Entry
	created int
}

func (r *testRepo) List(ctx context.Context) ([]Entry, error) { return r.entries, nil }

func (r *testRepo) Create(ctx context.Context, e Entry) error {
	r.created++
	return storage.ErrNotImplemented
}

func TestCreate_SurfacesNotImplemented(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{OwnerID: 1, Activity: "trained"})
	if !errors.Is(err, storage.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if repo.created != 1 {
		t.Fatalf("expected the store to be called once, got %d", repo.created)
	}
}

func TestCreate_ValidatesBeforeStore(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{OwnerID: 0, Activity: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{OwnerID: 1, Activity: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.created != 0 {
		t.Fatalf("store must not be called on invalid input")
	}
}

func TestList(t *testing.T) {
	svc := NewService(&testRepo{entries: []Entry{{ID: "a", OwnerID: 1, Activity: "x"}}})
	got, err := svc.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("list: %v %+v", err, got)
	}
}
