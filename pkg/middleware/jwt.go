package middleware

import (
	"strings"

	"ZamCare/internal/auth"
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
)

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// JWT rejects requests without a valid bearer token. Absent, malformed and
// expired tokens all look the same to the caller.
func JWT(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return response.Err(c, apperr.New(apperr.Unauthenticated, "Not authorized to access this route"))
		}
		claims, err := auth.ValidateJWT(tokenString)
		if err != nil {
			return response.Err(c, apperr.New(apperr.Unauthenticated, "Not authorized to access this route"))
		}
		c.Set("user", claims)
		return next(c)
	}
}

// OptionalJWT decodes a token when one is present but never fails the
// request. Public volunteer signup uses it to link the applicant's account.
func OptionalJWT(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := auth.ValidateJWT(tokenString); err == nil {
				c.Set("user", claims)
			}
		}
		return next(c)
	}
}
