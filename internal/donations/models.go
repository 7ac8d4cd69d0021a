package donations

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Donation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Donor         primitive.ObjectID `bson:"donor" json:"donor"`
	DonorName     string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	Status        string             `bson:"status" json:"status"`
	Type          string             `bson:"type" json:"type"`
	Category      string             `bson:"category" json:"category"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	IsAnonymous   bool               `bson:"isAnonymous" json:"isAnonymous"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// DonorInfo is the read-time projection of the referenced user.
type DonorInfo struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// DonationWithDonor is a Donation whose donor reference has been expanded.
type DonationWithDonor struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Donor         *DonorInfo         `bson:"donor" json:"donor"`
	DonorName     string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	Status        string             `bson:"status" json:"status"`
	Type          string             `bson:"type" json:"type"`
	Category      string             `bson:"category" json:"category"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	IsAnonymous   bool               `bson:"isAnonymous" json:"isAnonymous"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateDonationRequest carries the caller-settable fields. A supplied
// transactionId is ignored: the server always derives its own.
type CreateDonationRequest struct {
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency"`
	Status        string   `json:"status"`
	Type          string   `json:"type"`
	Category      string   `json:"category"`
	IsAnonymous   bool     `json:"isAnonymous"`
	Notes         string   `json:"notes"`
	TransactionID string   `json:"transactionId"`
}

type OverallStats struct {
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
	AvgDonation float64 `bson:"avgDonation" json:"avgDonation"`
	MinDonation float64 `bson:"minDonation" json:"minDonation"`
	MaxDonation float64 `bson:"maxDonation" json:"maxDonation"`
	Count       int     `bson:"count" json:"count"`
}

type CategoryTotal struct {
	Category string  `bson:"_id" json:"_id"`
	Total    float64 `bson:"total" json:"total"`
}

type Stats struct {
	Overall    OverallStats    `json:"overall"`
	Categories []CategoryTotal `json:"categories"`
}

var (
	donationStatuses   = []string{"Pending", "Completed", "Failed"}
	donationTypes      = []string{"One-time", "Monthly", "Annual"}
	donationCategories = []string{"General", "Education", "Health", "Nutrition", "Infrastructure"}
)

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
