package sponsors

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sponsor is a standalone lead record, not linked to a child or user.
type Sponsor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string             `bson:"company,omitempty" json:"company,omitempty"`
	Amount    float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Frequency string             `bson:"frequency,omitempty" json:"frequency,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateSponsorRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Company   string  `json:"company"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

var frequencies = []string{"one-time", "monthly", "annually"}
