package notifications

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listLimit caps the inbox query; older notifications fall off.
const listLimit = 20

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("notifications")}
}

func (r *NotificationRepository) Insert(ctx context.Context, notification *Notification) error {
	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(listLimit)
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	notifications := []*Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Notification, error) {
	var notification Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isRead": true}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
