package notifications

import (
	"ZamCare/internal/auth"
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationHandler struct {
	service *NotificationService
}

func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func principalID(c echo.Context) (primitive.ObjectID, error) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return primitive.NilObjectID, apperr.New(apperr.Unauthenticated, "Not authorized to access this route")
	}
	oid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.Unauthenticated, "Invalid token subject")
	}
	return oid, nil
}

func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return response.Err(c, err)
	}
	notifications, err := h.service.ListForUser(c.Request().Context(), principal)
	if err != nil {
		return response.Err(c, err)
	}
	return response.List(c, notifications, len(notifications))
}

func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return response.Err(c, err)
	}
	notification, err := h.service.MarkAsRead(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, notification)
}
