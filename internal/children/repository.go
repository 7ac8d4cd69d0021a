package children

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChildRepository struct {
	collection *mongo.Collection
}

func NewChildRepository(db *mongo.Database) *ChildRepository {
	return &ChildRepository{collection: db.Collection("children")}
}

func (r *ChildRepository) Insert(ctx context.Context, child *Child) error {
	_, err := r.collection.InsertOne(ctx, child)
	return err
}

func (r *ChildRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Child, error) {
	var child Child
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&child)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (r *ChildRepository) FindAll(ctx context.Context) ([]*Child, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	children := []*Child{}
	if err := cursor.All(ctx, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildRepository) Replace(ctx context.Context, child *Child) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": child.ID}, child)
	return err
}

func (r *ChildRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
