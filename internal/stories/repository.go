package stories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StoryRepository struct {
	collection *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{collection: db.Collection("stories")}
}

func storyProjection() bson.M {
	return bson.M{
		"title":          1,
		"content":        1,
		"author":         1,
		"child._id":      1,
		"child.name":     1,
		"child.photoUrl": 1,
		"imageUrl":       1,
		"category":       1,
		"isPublished":    1,
		"createdAt":      1,
	}
}

func expandChild() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "children",
			"localField":   "child",
			"foreignField": "_id",
			"as":           "child",
		}},
		{"$unwind": bson.M{"path": "$child", "preserveNullAndEmptyArrays": true}},
		{"$project": storyProjection()},
	}
}

func (r *StoryRepository) Insert(ctx context.Context, story *Story) error {
	_, err := r.collection.InsertOne(ctx, story)
	return err
}

func (r *StoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Story, error) {
	var story Story
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&story)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

// FindPublishedWithChild returns published stories, newest first, with the
// child reference expanded to {_id, name, photoUrl}.
func (r *StoryRepository) FindPublishedWithChild(ctx context.Context) ([]*StoryWithChild, error) {
	pipeline := append([]bson.M{
		{"$match": bson.M{"isPublished": true}},
	}, expandChild()...)
	pipeline = append(pipeline, bson.M{"$sort": bson.M{"createdAt": -1}})

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	stories := []*StoryWithChild{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *StoryRepository) FindByIDWithChild(ctx context.Context, id primitive.ObjectID) (*StoryWithChild, error) {
	pipeline := append([]bson.M{
		{"$match": bson.M{"_id": id}},
	}, expandChild()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var stories []*StoryWithChild
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		return nil, nil
	}
	return stories[0], nil
}

func (r *StoryRepository) Replace(ctx context.Context, story *Story) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": story.ID}, story)
	return err
}

func (r *StoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
