package categories

import (
	"context"
	"errors"
	"sort"
	"testing"

	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/ports/storage"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID      map[int64]Category
	creatures map[int64][]creatures.Creature
	nextID    int64
	listCalls int
	listErr   error
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:      map[int64]Category{},
		creatures: map[int64][]creatures.Creature{},
	}
}

func (r *testRepo) List(ctx context.Context) ([]Category, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return Category{}, storage.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *testRepo) Create(ctx context.Context, c Category) (Category, error) {
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *testRepo) Update(ctx context.Context, c Category) error {
	if _, ok := r.byID[c.ID]; !ok {
		return storage.ErrNoRowsAffected
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return storage.ErrNoRowsAffected
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) CreaturesByCategory(ctx context.Context, categoryID int64) ([]creatures.Creature, error) {
	return r.creatures[categoryID], nil
}

// -------------------------
// Tests
// -------------------------

func TestCreate_NameConflictIgnoresCaseAndSpaces(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), nil)

	if _, err := svc.Create(ctx, "Fire"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "  fire  "); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := svc.Create(ctx, "Water"); err != nil {
		t.Fatalf("distinct name must pass: %v", err)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	if _, err := svc.Create(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type staticLister []Category

func (s staticLister) List(ctx context.Context) ([]Category, error) { return s, nil }

func TestList_UsesListerButPrecheckUsesRepo(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	// lister desactualizado: todavía no ve "Fire"
	svc := NewService(repo, staticLister{})

	if _, err := svc.Create(ctx, "Fire"); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected stale (empty) listing, got %v", items)
	}

	if _, err := svc.Create(ctx, "FIRE"); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("expected ErrConflict despite stale listing, got %v", err)
	}

	fresh, err := svc.ListFresh(ctx)
	if err != nil {
		t.Fatalf("list fresh: %v", err)
	}
	if len(fresh) != 1 || fresh[0].Name != "Fire" {
		t.Fatalf("expected fresh listing with Fire, got %v", fresh)
	}
}

func TestCreaturesByCategory(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewService(repo, nil)

	c, _ := svc.Create(ctx, "Electric")
	repo.creatures[c.ID] = []creatures.Creature{{ID: 1, Name: "Pikachu"}}

	got, err := svc.CreaturesByCategory(ctx, c.ID)
	if err != nil {
		t.Fatalf("creatures by category: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Pikachu" {
		t.Fatalf("unexpected creatures: %+v", got)
	}

	if _, err := svc.CreaturesByCategory(ctx, 404); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), nil)

	c, _ := svc.Create(ctx, "Grass")
	updated, err := svc.Update(ctx, Category{ID: c.ID, Name: " Plant "})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Plant" {
		t.Fatalf("expected trimmed name, got %q", updated.Name)
	}

	if _, err := svc.Update(ctx, Category{ID: 99, Name: "x"}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, c.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
