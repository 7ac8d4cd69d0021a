package analytics

import (
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
)

type AnalyticsHandler struct {
	service *AnalyticsService
}

func NewAnalyticsHandler(service *AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	data, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, data)
}
