package notifications

import (
	"context"
	"time"

	"ZamCare/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, notification *Notification) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
}

type NotificationService struct {
	repo   Repository
	logger *zap.Logger
}

func NewNotificationService(repo Repository, logger *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error) {
	return s.repo.FindByUser(ctx, userID)
}

// MarkAsRead flips the read flag. Only the recipient may touch their
// own notification.
func (s *NotificationService) MarkAsRead(ctx context.Context, id string, principal primitive.ObjectID) (*Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "Notification not found")
	}
	notification, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, apperr.New(apperr.NotFound, "Notification not found")
	}
	if notification.User != principal {
		return nil, apperr.New(apperr.Forbidden, "Not authorized")
	}

	if err := s.repo.MarkRead(ctx, oid); err != nil {
		return nil, err
	}
	notification.IsRead = true
	return notification, nil
}

// Notify records an in-app notification. It is fire-and-forget by
// contract: delivery failures are logged and swallowed so the
// triggering operation never sees them.
func (s *NotificationService) Notify(ctx context.Context, userID primitive.ObjectID, title, message, notifType, link string) {
	if !isOneOf(notifType, notificationTypes) {
		notifType = "System"
	}
	notification := &Notification{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		IsRead:    false,
		Link:      link,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, notification); err != nil {
		s.logger.Warn("Failed to record notification",
			zap.Error(err),
			zap.String("user", userID.Hex()),
			zap.String("title", title))
	}
}
