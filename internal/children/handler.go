package children

import (
	"ZamCare/internal/auth"
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChildHandler struct {
	service *ChildService
}

func NewChildHandler(service *ChildService) *ChildHandler {
	return &ChildHandler{service: service}
}

func (h *ChildHandler) GetChildren(c echo.Context) error {
	children, err := h.service.List(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.List(c, children, len(children))
}

func (h *ChildHandler) GetChild(c echo.Context) error {
	child, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, child)
}

func (h *ChildHandler) CreateChild(c echo.Context) error {
	var req CreateChildRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	child, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, child)
}

func (h *ChildHandler) UpdateChild(c echo.Context) error {
	var req UpdateChildRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	child, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, child)
}

func (h *ChildHandler) DeleteChild(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, map[string]any{})
}

func (h *ChildHandler) AddProgressReport(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return response.Err(c, apperr.New(apperr.Unauthenticated, "Not authorized to access this route"))
	}
	author, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return response.Err(c, apperr.New(apperr.Unauthenticated, "Invalid token subject"))
	}

	var req AddReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	reports, err := h.service.AddProgressReport(c.Request().Context(), c.Param("id"), req, author)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, reports)
}
