package notifications

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Type      string             `bson:"type" json:"type"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

var notificationTypes = []string{"Donation", "Volunteer", "Child", "System"}

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
