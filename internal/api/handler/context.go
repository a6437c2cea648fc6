package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// ctxClaims extracts the identity claims injected by the Permission
// middleware. Presence of both values proves the gate ran; a handler reached
// without them is a wiring bug surfaced as 401, never a silent pass.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Claims{UserID: userID, Role: role}, nil
}
