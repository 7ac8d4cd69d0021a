package volunteering

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title              string               `bson:"title" json:"title"`
	Description        string               `bson:"description" json:"description"`
	Location           string               `bson:"location,omitempty" json:"location,omitempty"`
	Date               time.Time            `bson:"date" json:"date"`
	Duration           string               `bson:"duration,omitempty" json:"duration,omitempty"`
	Difficulty         string               `bson:"difficulty" json:"difficulty"`
	AssignedVolunteers []primitive.ObjectID `bson:"assignedVolunteers" json:"assignedVolunteers"`
	Status             string               `bson:"status" json:"status"`
	Category           string               `bson:"category" json:"category"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
}

type Volunteer struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	User          *primitive.ObjectID  `bson:"user,omitempty" json:"user,omitempty"`
	Name          string               `bson:"name" json:"name"`
	Email         string               `bson:"email" json:"email"`
	Message       string               `bson:"message,omitempty" json:"message,omitempty"`
	Phone         string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Skills        []string             `bson:"skills,omitempty" json:"skills,omitempty"`
	Availability  string               `bson:"availability,omitempty" json:"availability,omitempty"`
	Interests     []string             `bson:"interests,omitempty" json:"interests,omitempty"`
	Status        string               `bson:"status" json:"status"`
	AssignedTasks []primitive.ObjectID `bson:"assignedTasks" json:"assignedTasks"`
	TotalHours    float64              `bson:"totalHours" json:"totalHours"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
}

// VolunteerInfo / TaskInfo are the read-time projections used when the
// reference arrays are expanded.
type VolunteerInfo struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

type TaskInfo struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
	Date  time.Time          `bson:"date" json:"date"`
}

type TaskWithVolunteers struct {
	ID                 primitive.ObjectID `bson:"_id" json:"_id"`
	Title              string             `bson:"title" json:"title"`
	Description        string             `bson:"description" json:"description"`
	Location           string             `bson:"location,omitempty" json:"location,omitempty"`
	Date               time.Time          `bson:"date" json:"date"`
	Duration           string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Difficulty         string             `bson:"difficulty" json:"difficulty"`
	AssignedVolunteers []VolunteerInfo    `bson:"assignedVolunteers" json:"assignedVolunteers"`
	Status             string             `bson:"status" json:"status"`
	Category           string             `bson:"category" json:"category"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}

type VolunteerWithTasks struct {
	ID            primitive.ObjectID  `bson:"_id" json:"_id"`
	User          *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Name          string              `bson:"name" json:"name"`
	Email         string              `bson:"email" json:"email"`
	Message       string              `bson:"message,omitempty" json:"message,omitempty"`
	Phone         string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Skills        []string            `bson:"skills,omitempty" json:"skills,omitempty"`
	Availability  string              `bson:"availability,omitempty" json:"availability,omitempty"`
	Interests     []string            `bson:"interests,omitempty" json:"interests,omitempty"`
	Status        string              `bson:"status" json:"status"`
	AssignedTasks []TaskInfo          `bson:"assignedTasks" json:"assignedTasks"`
	TotalHours    float64             `bson:"totalHours" json:"totalHours"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Date        *time.Time `json:"date"`
	Duration    string     `json:"duration"`
	Difficulty  string     `json:"difficulty"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Date        *time.Time `json:"date"`
	Duration    *string    `json:"duration"`
	Difficulty  *string    `json:"difficulty"`
	Status      *string    `json:"status"`
	Category    *string    `json:"category"`
}

type AssignVolunteerRequest struct {
	VolunteerID string `json:"volunteerId"`
}

type CreateVolunteerRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Message      string   `json:"message"`
	Phone        string   `json:"phone"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	Interests    []string `json:"interests"`
}

type UpdateVolunteerRequest struct {
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	Message      *string   `json:"message"`
	Phone        *string   `json:"phone"`
	Skills       *[]string `json:"skills"`
	Availability *string   `json:"availability"`
	Interests    *[]string `json:"interests"`
	Status       *string   `json:"status"`
}

// LogHoursRequest accepts the delta as either a JSON number or a numeric
// string; the service does the parsing.
type LogHoursRequest struct {
	Hours json.Number `json:"hours"`
}

var (
	taskDifficulties  = []string{"Easy", "Medium", "Hard"}
	taskStatuses      = []string{"Open", "In Progress", "Completed", "Cancelled"}
	taskCategories    = []string{"Education", "Maintenance", "Medical", "Fundraising", "General"}
	volunteerStatuses = []string{"Pending", "Approved", "Active", "Inactive"}
)

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
