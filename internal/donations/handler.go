package donations

import (
	"ZamCare/internal/auth"
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationHandler struct {
	service *DonationService
}

func NewDonationHandler(service *DonationService) *DonationHandler {
	return &DonationHandler{service: service}
}

func (h *DonationHandler) GetDonations(c echo.Context) error {
	donations, err := h.service.List(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.List(c, donations, len(donations))
}

func (h *DonationHandler) CreateDonation(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return response.Err(c, apperr.New(apperr.Unauthenticated, "Not authorized to access this route"))
	}
	donorID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return response.Err(c, apperr.New(apperr.Unauthenticated, "Invalid token subject"))
	}

	var req CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	donation, err := h.service.Create(c.Request().Context(), req, donorID, claims.Name)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, donation)
}

func (h *DonationHandler) GetDonationStats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, stats)
}
