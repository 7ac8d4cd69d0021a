package sponsors

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SponsorRepository struct {
	collection *mongo.Collection
}

func NewSponsorRepository(db *mongo.Database) *SponsorRepository {
	return &SponsorRepository{collection: db.Collection("sponsors")}
}

func (r *SponsorRepository) Insert(ctx context.Context, sponsor *Sponsor) error {
	_, err := r.collection.InsertOne(ctx, sponsor)
	return err
}

func (r *SponsorRepository) FindAll(ctx context.Context) ([]*Sponsor, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	sponsors := []*Sponsor{}
	if err := cursor.All(ctx, &sponsors); err != nil {
		return nil, err
	}
	return sponsors, nil
}
