package children

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type School struct {
	Name                string `bson:"name,omitempty" json:"name,omitempty"`
	Grade               string `bson:"grade,omitempty" json:"grade,omitempty"`
	AcademicPerformance string `bson:"academicPerformance,omitempty" json:"academicPerformance,omitempty"`
}

// ProgressReport is owned exclusively by its Child. Reports are prepended,
// never edited or removed.
type ProgressReport struct {
	Date     time.Time          `bson:"date" json:"date"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Category string             `bson:"category" json:"category"`
	Author   primitive.ObjectID `bson:"author,omitempty" json:"author,omitempty"`
}

type Child struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Age             int                `bson:"age" json:"age"`
	Gender          string             `bson:"gender" json:"gender"`
	Background      string             `bson:"background,omitempty" json:"background,omitempty"`
	Needs           []string           `bson:"needs,omitempty" json:"needs,omitempty"`
	Hobbies         []string           `bson:"hobbies,omitempty" json:"hobbies,omitempty"`
	School          School             `bson:"school,omitempty" json:"school,omitempty"`
	HealthStatus    string             `bson:"healthStatus" json:"healthStatus"`
	PhotoID         string             `bson:"photoId,omitempty" json:"photoId,omitempty"`
	PhotoURL        string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Status          string             `bson:"status" json:"status"`
	SponsorshipCost float64            `bson:"sponsorshipCost" json:"sponsorshipCost"`
	ProgressReports []ProgressReport   `bson:"progressReports" json:"progressReports"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateChildRequest struct {
	Name            string   `json:"name"`
	Age             *int     `json:"age"`
	Gender          string   `json:"gender"`
	Background      string   `json:"background"`
	Needs           []string `json:"needs"`
	Hobbies         []string `json:"hobbies"`
	School          School   `json:"school"`
	HealthStatus    string   `json:"healthStatus"`
	PhotoID         string   `json:"photoId"`
	PhotoURL        string   `json:"photoUrl"`
	Status          string   `json:"status"`
	SponsorshipCost *float64 `json:"sponsorshipCost"`
}

// UpdateChildRequest is a merge-patch: only non-nil fields are applied.
type UpdateChildRequest struct {
	Name            *string   `json:"name"`
	Age             *int      `json:"age"`
	Gender          *string   `json:"gender"`
	Background      *string   `json:"background"`
	Needs           *[]string `json:"needs"`
	Hobbies         *[]string `json:"hobbies"`
	School          *School   `json:"school"`
	HealthStatus    *string   `json:"healthStatus"`
	PhotoID         *string   `json:"photoId"`
	PhotoURL        *string   `json:"photoUrl"`
	Status          *string   `json:"status"`
	SponsorshipCost *float64  `json:"sponsorshipCost"`
}

type AddReportRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

const defaultSponsorshipCost = 500 // monthly, ZMW

var (
	genders             = []string{"Male", "Female", "Unknown"}
	healthStatuses      = []string{"Excellent", "Good", "Stable", "Under Care"}
	childStatuses       = []string{"Available", "Sponsored", "Partially Sponsored"}
	academicPerformance = []string{"Excellent", "Good", "Average", "Developing"}
	reportCategories    = []string{"Academic", "Health", "Social", "Personal"}
)

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
