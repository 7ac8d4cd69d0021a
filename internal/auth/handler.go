package auth

import (
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	service *UserService
}

func NewAuthHandler(service *UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	result, err := h.service.Signup(c.Request().Context(), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cred Credentials
	if err := c.Bind(&cred); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	result, err := h.service.Login(c.Request().Context(), cred)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, result)
}

func (h *AuthHandler) Profile(c echo.Context) error {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return response.Err(c, apperr.New(apperr.Unauthenticated, "Not authorized"))
	}
	user, err := h.service.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, user)
}
