package mongostore

import (
	"context"
	"os"
	"testing"

	"creature-reviews/internal/domain/activity"
	"creature-reviews/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestActivityDocumentToEntry(t *testing.T) {
	id := bson.NewObjectID()
	e := activityDocument{ID: id, OwnerID: 3, Activity: "gym battle"}.toEntry()
	assert.Equal(t, activity.Entry{ID: id.Hex(), OwnerID: 3, Activity: "gym battle"}, e)

	assert.Empty(t, activityDocument{OwnerID: 1}.toEntry().ID)
}

func TestActivityRepoAgainstMongo(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx := context.Background()

	client, err := Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("creature_reviews_test")
	coll := db.Collection("activities")
	require.NoError(t, coll.Drop(ctx))
	t.Cleanup(func() { _ = coll.Drop(context.Background()) })

	_, err = coll.InsertMany(ctx, []any{
		bson.D{{Key: "ownerId", Value: int64(1)}, {Key: "activity", Value: "caught a Pikachu"}},
		bson.D{{Key: "ownerId", Value: int64(2)}, {Key: "activity", Value: "won a badge"}},
	})
	require.NoError(t, err)

	repo := NewActivityRepo(db, "activities")

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Len(t, e.ID, 24)
	}

	err = repo.Create(ctx, activity.Entry{OwnerID: 1, Activity: "x"})
	assert.ErrorIs(t, err, storage.ErrNotImplemented)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}
