package audit

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo appends audit events to the "audit_events" collection. The
// collection is insert-only; retention is an ops concern (TTL index or
// scheduled pruning), not handled here.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection("audit_events")}
}

// EnsureIndexes creates the lookup index for per-company review queries.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func (r *MongoRepo) Append(ctx context.Context, e Event) error {
	_, err := r.col.InsertOne(ctx, e)
	return err
}
