package donations

import (
	"context"

	"ZamCare/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DonationRepository struct {
	collection *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{collection: db.Collection("donations")}
}

func (r *DonationRepository) Insert(ctx context.Context, donation *Donation) error {
	_, err := r.collection.InsertOne(ctx, donation)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.New(apperr.Conflict, "Duplicate transaction ID")
		}
		return err
	}
	return nil
}

// FindAllWithDonor expands the donor reference into {_id, name, email}.
// An unresolvable reference leaves donor null.
func (r *DonationRepository) FindAllWithDonor(ctx context.Context) ([]*DonationWithDonor, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "donor",
			"foreignField": "_id",
			"as":           "donor",
		}},
		{"$unwind": bson.M{"path": "$donor", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"donor._id":     1,
			"donor.name":    1,
			"donor.email":   1,
			"donorName":     1,
			"amount":        1,
			"currency":      1,
			"status":        1,
			"type":          1,
			"category":      1,
			"transactionId": 1,
			"isAnonymous":   1,
			"notes":         1,
			"createdAt":     1,
		}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	donations := []*DonationWithDonor{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// OverallStats aggregates every donation regardless of status; the dashboard
// reports the Completed-only view.
func (r *DonationRepository) OverallStats(ctx context.Context) (*OverallStats, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":         nil,
			"totalAmount": bson.M{"$sum": "$amount"},
			"avgDonation": bson.M{"$avg": "$amount"},
			"minDonation": bson.M{"$min": "$amount"},
			"maxDonation": bson.M{"$max": "$amount"},
			"count":       bson.M{"$sum": 1},
		}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var results []OverallStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *DonationRepository) CategoryStats(ctx context.Context) ([]CategoryTotal, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$category",
			"total": bson.M{"$sum": "$amount"},
		}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	totals := []CategoryTotal{}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}
