package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles are a closed set. Authorization call sites switch on these constants,
// never on raw request strings.
const (
	RoleUser      = "user"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the signup/login payload: the signed token plus the user
// it represents.
type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
