package analytics

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsRepository reads across the collections the dashboard reports
// on. It never writes.
type AnalyticsRepository struct {
	children   *mongo.Collection
	donations  *mongo.Collection
	volunteers *mongo.Collection
	sponsors   *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{
		children:   db.Collection("children"),
		donations:  db.Collection("donations"),
		volunteers: db.Collection("volunteers"),
		sponsors:   db.Collection("sponsors"),
	}
}

// completedOnly restricts revenue figures to settled donations.
var completedOnly = bson.M{"status": "Completed"}

func (r *AnalyticsRepository) Counts(ctx context.Context) (*Counts, error) {
	children, err := r.children.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	donations, err := r.donations.CountDocuments(ctx, completedOnly)
	if err != nil {
		return nil, err
	}
	volunteers, err := r.volunteers.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	sponsors, err := r.sponsors.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return &Counts{
		Children:   children,
		Donations:  donations,
		Volunteers: volunteers,
		Sponsors:   sponsors,
	}, nil
}

func (r *AnalyticsRepository) Revenue(ctx context.Context) (*Revenue, error) {
	pipeline := []bson.M{
		{"$match": completedOnly},
		{"$group": bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$amount"},
			"avgDonation":  bson.M{"$avg": "$amount"},
		}},
	}
	cursor, err := r.donations.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var results []*Revenue
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *AnalyticsRepository) CategoryBreakdown(ctx context.Context) ([]CategoryStat, error) {
	pipeline := []bson.M{
		{"$match": completedOnly},
		{"$group": bson.M{
			"_id":   "$category",
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}},
	}
	cursor, err := r.donations.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	stats := []CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// MonthlyRevenue buckets completed donations from the last six months by
// calendar month, oldest bucket first.
func (r *AnalyticsRepository) MonthlyRevenue(ctx context.Context, since time.Time) ([]MonthlyBucket, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    "Completed",
			"createdAt": bson.M{"$gte": since},
		}},
		{"$group": bson.M{
			"_id": bson.M{
				"month": bson.M{"$month": "$createdAt"},
				"year":  bson.M{"$year": "$createdAt"},
			},
			"total": bson.M{"$sum": "$amount"},
		}},
		{"$sort": bson.M{"_id.year": 1, "_id.month": 1}},
	}
	cursor, err := r.donations.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	buckets := []MonthlyBucket{}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
