package stories

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Story struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title       string              `bson:"title" json:"title"`
	Content     string              `bson:"content" json:"content"`
	Author      primitive.ObjectID  `bson:"author" json:"author"`
	Child       *primitive.ObjectID `bson:"child,omitempty" json:"child,omitempty"`
	ImageURL    string              `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Category    string              `bson:"category" json:"category"`
	IsPublished bool                `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

// ChildInfo is the read-time projection of a weakly referenced child.
type ChildInfo struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	PhotoURL string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
}

type StoryWithChild struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	Child       *ChildInfo         `bson:"child" json:"child"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Category    string             `bson:"category" json:"category"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateStoryRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Child       string `json:"child"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	IsPublished bool   `json:"isPublished"`
}

type UpdateStoryRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Child       *string `json:"child"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	IsPublished *bool   `json:"isPublished"`
}

const maxTitleLength = 100

var storyCategories = []string{"Education", "Health", "General", "Community"}

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
