package sponsors

import (
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
)

type SponsorHandler struct {
	service *SponsorService
}

func NewSponsorHandler(service *SponsorService) *SponsorHandler {
	return &SponsorHandler{service: service}
}

func (h *SponsorHandler) GetSponsors(c echo.Context) error {
	sponsors, err := h.service.List(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.List(c, sponsors, len(sponsors))
}

func (h *SponsorHandler) CreateSponsor(c echo.Context) error {
	var req CreateSponsorRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	sponsor, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, sponsor)
}
