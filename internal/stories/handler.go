package stories

import (
	"ZamCare/internal/auth"
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoryHandler struct {
	service *StoryService
}

func NewStoryHandler(service *StoryService) *StoryHandler {
	return &StoryHandler{service: service}
}

func (h *StoryHandler) GetStories(c echo.Context) error {
	stories, err := h.service.List(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.List(c, stories, len(stories))
}

func (h *StoryHandler) GetStory(c echo.Context) error {
	story, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, story)
}

func (h *StoryHandler) CreateStory(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return response.Err(c, apperr.New(apperr.Unauthenticated, "Not authorized to access this route"))
	}
	author, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return response.Err(c, apperr.New(apperr.Unauthenticated, "Invalid token subject"))
	}

	var req CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	story, err := h.service.Create(c.Request().Context(), req, author)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, story)
}

func (h *StoryHandler) UpdateStory(c echo.Context) error {
	var req UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	story, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, story)
}

func (h *StoryHandler) DeleteStory(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, map[string]any{})
}
