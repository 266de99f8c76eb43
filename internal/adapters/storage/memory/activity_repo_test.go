package memory

import (
	"context"
	"testing"

	"creature-reviews/internal/domain/activity"
	"creature-reviews/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_ListReturnsSeedWithIDs(t *testing.T) {
	repo := NewActivityRepo(
		activity.Entry{OwnerID: 1, Activity: "caught a Pikachu"},
		activity.Entry{ID: "fixed", OwnerID: 2, Activity: "won a badge"},
	)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "fixed", got[1].ID)

	got[0].Activity = "mutated"
	again, _ := repo.List(context.Background())
	assert.Equal(t, "caught a Pikachu", again[0].Activity)
}

func TestActivityRepo_CreateNotImplemented(t *testing.T) {
	repo := NewActivityRepo()
	err := repo.Create(context.Background(), activity.Entry{OwnerID: 1, Activity: "x"})
	assert.ErrorIs(t, err, storage.ErrNotImplemented)

	got, _ := repo.List(context.Background())
	assert.Empty(t, got)
}
