package auth

import (
	"context"
	"time"

	"ZamCare/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const tokenLifetime = 30 * 24 * time.Hour

// Repository is the persistence surface the service needs.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	Create(ctx context.Context, user *User) error
}

type UserService struct {
	repo   Repository
	logger *zap.Logger
}

func NewUserService(repo Repository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error) {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperr.Invalid("Missing required fields", missing...)
	}

	// Admin accounts are provisioned out of band, never via public signup.
	role := req.Role
	switch role {
	case "":
		role = RoleUser
	case RoleUser, RoleVolunteer:
	default:
		return nil, apperr.Invalid("Invalid role", "role")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "Email already registered")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := GenerateJWT(user, tokenLifetime)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User registered", zap.String("email", user.Email), zap.String("role", user.Role))
	return &TokenResponse{Token: token, User: user}, nil
}

func (s *UserService) Login(ctx context.Context, cred Credentials) (*TokenResponse, error) {
	if cred.Email == "" || cred.Password == "" {
		return nil, apperr.Invalid("Please provide an email and password", "email", "password")
	}

	user, err := s.repo.FindByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	// Unknown account and wrong password are indistinguishable to the caller.
	if user == nil || !CheckPasswordHash(cred.Password, user.PasswordHash) {
		return nil, apperr.New(apperr.Unauthenticated, "Invalid credentials")
	}

	token, err := GenerateJWT(user, tokenLifetime)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: token, User: user}, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.New(apperr.Unauthenticated, "Invalid token subject")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Newf(apperr.NotFound, "User not found with id of %s", userID)
	}
	return user, nil
}
