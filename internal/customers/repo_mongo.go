package customers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection("customers")}
}

// EnsureIndexes creates the per-company email uniqueness index.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "company_id", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoRepo) Insert(ctx context.Context, c Customer) error {
	_, err := r.col.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return err
}

func (r *MongoRepo) FindByID(ctx context.Context, companyID, id string) (Customer, error) {
	var c Customer
	err := r.col.FindOne(ctx, bson.M{"_id": id, "company_id": companyID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Customer{}, ErrNotFound
	}
	return c, err
}

func (r *MongoRepo) FindByEmail(ctx context.Context, companyID, email string) (Customer, error) {
	var c Customer
	err := r.col.FindOne(ctx, bson.M{"company_id": companyID, "email": email}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Customer{}, ErrNotFound
	}
	return c, err
}

func (r *MongoRepo) List(ctx context.Context, companyID string) ([]Customer, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []Customer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) Update(ctx context.Context, c Customer) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID, "company_id": c.CompanyID}, c)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) Delete(ctx context.Context, companyID, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "company_id": companyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
