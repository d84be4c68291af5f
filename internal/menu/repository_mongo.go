package menu

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const menuCollection = "menu"

// mongoRecord stores the document fields at the top level next to _id.
type mongoRecord struct {
	ID       string `bson:"_id"`
	Document `bson:",inline"`
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(menuCollection)}
}

func (r *MongoRepository) Get(ctx context.Context, key string) (*Document, error) {
	var rec mongoRecord
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &rec.Document, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, key string, doc *Document) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": key},
		mongoRecord{ID: key, Document: *doc},
		options.Replace().SetUpsert(true),
	)
	return err
}
