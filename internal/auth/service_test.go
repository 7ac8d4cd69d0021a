package auth

import (
	"context"
	"testing"

	"ZamCare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[primitive.ObjectID]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*User{},
		byID:    map[primitive.ObjectID]*User{},
	}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func newTestUserService(repo Repository) *UserService {
	return NewUserService(repo, zap.NewNop())
}

func TestSignupDefaultsToUserRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := newTestUserService(newFakeUserRepo())

	resp, err := svc.Signup(context.Background(), SignupRequest{
		Name: "Bwalya", Email: "bwalya@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, "secret123", resp.User.PasswordHash)
}

func TestSignupRejectsAdminRole(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), SignupRequest{
		Name: "Bwalya", Email: "bwalya@example.com", Password: "secret123", Role: RoleAdmin,
	})
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestSignupMissingFields(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), SignupRequest{Email: "bwalya@example.com"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "password")
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	req := SignupRequest{Name: "Bwalya", Email: "bwalya@example.com", Password: "secret123"}
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Name: "Bwalya", Email: "bwalya@example.com", Password: "secret123", Role: RoleVolunteer,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), Credentials{Email: "bwalya@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, RoleVolunteer, resp.User.Role)

	// Wrong password and unknown account must be indistinguishable.
	_, wrongPass := svc.Login(context.Background(), Credentials{Email: "bwalya@example.com", Password: "nope"})
	_, unknown := svc.Login(context.Background(), Credentials{Email: "ghost@example.com", Password: "nope"})
	assert.True(t, apperr.IsKind(wrongPass, apperr.Unauthenticated))
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestProfileNotFound(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	_, err := svc.Profile(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = svc.Profile(context.Background(), "not-hex")
	assert.True(t, apperr.IsKind(err, apperr.Unauthenticated))
}
