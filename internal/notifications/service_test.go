package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"ZamCare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeNotificationRepo struct {
	notifications map[primitive.ObjectID]*Notification
	insertErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[primitive.ObjectID]*Notification{}}
}

func (r *fakeNotificationRepo) Insert(_ context.Context, notification *Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	copied := *notification
	r.notifications[notification.ID] = &copied
	return nil
}

func (r *fakeNotificationRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*Notification, error) {
	out := []*Notification{}
	for _, n := range r.notifications {
		if n.User == userID {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id primitive.ObjectID) error {
	if n, ok := r.notifications[id]; ok {
		n.IsRead = true
	}
	return nil
}

func newTestNotificationService() (*NotificationService, *fakeNotificationRepo) {
	repo := newFakeNotificationRepo()
	return NewNotificationService(repo, zap.NewNop()), repo
}

func TestNotifyRecords(t *testing.T) {
	svc, repo := newTestNotificationService()
	user := primitive.NewObjectID()

	svc.Notify(context.Background(), user, "Donation Received", "Thanks", "Donation", "/donations")

	list, err := svc.ListForUser(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Donation Received", list[0].Title)
	assert.Equal(t, "Donation", list[0].Type)
	assert.False(t, list[0].IsRead)
	assert.WithinDuration(t, time.Now(), list[0].CreatedAt, time.Minute)
	assert.Len(t, repo.notifications, 1)
}

func TestNotifyUnknownTypeFallsBackToSystem(t *testing.T) {
	svc, _ := newTestNotificationService()
	user := primitive.NewObjectID()

	svc.Notify(context.Background(), user, "Hello", "msg", "Marketing", "")

	list, err := svc.ListForUser(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "System", list[0].Type)
}

func TestNotifySwallowsRepositoryErrors(t *testing.T) {
	repo := newFakeNotificationRepo()
	repo.insertErr = errors.New("write concern failed")
	svc := NewNotificationService(repo, zap.NewNop())

	// Must not panic or surface the error.
	svc.Notify(context.Background(), primitive.NewObjectID(), "t", "m", "System", "")
	assert.Empty(t, repo.notifications)
}

func TestMarkAsRead(t *testing.T) {
	svc, repo := newTestNotificationService()
	user := primitive.NewObjectID()
	svc.Notify(context.Background(), user, "t", "m", "System", "")

	var id primitive.ObjectID
	for k := range repo.notifications {
		id = k
	}

	updated, err := svc.MarkAsRead(context.Background(), id.Hex(), user)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
	assert.True(t, repo.notifications[id].IsRead)
}

func TestMarkAsReadOwnership(t *testing.T) {
	svc, repo := newTestNotificationService()
	owner := primitive.NewObjectID()
	svc.Notify(context.Background(), owner, "t", "m", "System", "")

	var id primitive.ObjectID
	for k := range repo.notifications {
		id = k
	}

	_, err := svc.MarkAsRead(context.Background(), id.Hex(), primitive.NewObjectID())
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
	assert.False(t, repo.notifications[id].IsRead)
}

func TestMarkAsReadNotFound(t *testing.T) {
	svc, _ := newTestNotificationService()

	_, err := svc.MarkAsRead(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID())
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = svc.MarkAsRead(context.Background(), "junk", primitive.NewObjectID())
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
