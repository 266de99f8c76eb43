package mongostore

import (
	"context"
	"fmt"

	"creature-reviews/internal/domain/activity"
	"creature-reviews/internal/ports/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// activityDocument es la forma en la colección: { _id: ObjectId, ownerId, activity }.
type activityDocument struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	OwnerID  int64         `bson:"ownerId"`
	Activity string        `bson:"activity"`
}

func (d activityDocument) toEntry() activity.Entry {
	e := activity.Entry{OwnerID: d.OwnerID, Activity: d.Activity}
	if !d.ID.IsZero() {
		e.ID = d.ID.Hex()
	}
	return e
}

type ActivityRepo struct {
	coll *mongo.Collection
}

func NewActivityRepo(db *mongo.Database, collection string) *ActivityRepo {
	return &ActivityRepo{coll: db.Collection(collection)}
}

var _ activity.Repository = (*ActivityRepo)(nil)

// List trae la colección completa, sin filtro ni orden.
func (r *ActivityRepo) List(ctx context.Context) ([]activity.Entry, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}

	var docs []activityDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	out := make([]activity.Entry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntry())
	}
	return out, nil
}

func (r *ActivityRepo) Create(ctx context.Context, e activity.Entry) error {
	return fmt.Errorf("create activity entry: %w", storage.ErrNotImplemented)
}
