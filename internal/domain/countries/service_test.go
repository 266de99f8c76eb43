package countries

import (
	"context"
	"errors"
	"testing"

	"creature-reviews/internal/domain/owners"
	"creature-reviews/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID    map[int64]Country
	owners  map[int64][]owners.Owner
	ownerOf map[int64]int64
	nextID  int64
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:    map[int64]Country{},
		owners:  map[int64][]owners.Owner{},
		ownerOf: map[int64]int64{},
	}
}

func (r *testRepo) List(ctx context.Context) ([]Country, error) {
	out := make([]Country, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Country, error) {
	c, ok := r.byID[id]
	if !ok {
		return Country{}, storage.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *testRepo) Create(ctx context.Context, c Country) (Country, error) {
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *testRepo) Update(ctx context.Context, c Country) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if len(r.owners[id]) > 0 {
		return storage.ErrConflict
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) OwnersByCountry(ctx context.Context, countryID int64) ([]owners.Owner, error) {
	return r.owners[countryID], nil
}

func (r *testRepo) CountryByOwner(ctx context.Context, ownerID int64) (Country, error) {
	return r.GetByID(ctx, r.ownerOf[ownerID])
}

func TestCountryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	knownOwners := existerFunc(func(ctx context.Context, id int64) (bool, error) {
		_, ok := repo.ownerOf[id]
		return ok, nil
	})
	svc := NewService(repo, knownOwners)

	kanto, err := svc.Create(ctx, " Kanto ")
	require.NoError(t, err)
	assert.Equal(t, "Kanto", kanto.Name)

	_, err = svc.Create(ctx, "kanto")
	assert.ErrorIs(t, err, storage.ErrConflict)

	repo.owners[kanto.ID] = []owners.Owner{{ID: 5, Name: "Ash", CountryID: kanto.ID}}
	repo.ownerOf[5] = kanto.ID

	got, err := svc.CountryByOwner(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, kanto.ID, got.ID)

	_, err = svc.CountryByOwner(ctx, 6)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	os, err := svc.OwnersByCountry(ctx, kanto.ID)
	require.NoError(t, err)
	assert.Len(t, os, 1)

	err = svc.Delete(ctx, kanto.ID)
	assert.ErrorIs(t, err, storage.ErrConflict, "country with owners is not deletable")
}

func TestUpdateValidation(t *testing.T) {
	svc := NewService(newTestRepo(), existerFunc(func(context.Context, int64) (bool, error) { return false, nil }))

	_, err := svc.Update(context.Background(), Country{ID: 1, Name: " "})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.Update(context.Background(), Country{ID: 1, Name: "Johto"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

type existerFunc func(ctx context.Context, id int64) (bool, error)

func (f existerFunc) Exists(ctx context.Context, id int64) (bool, error) { return f(ctx, id) }
