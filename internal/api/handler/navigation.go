package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NavigationHandler serves the two landing endpoints the role gate redirects
// to. The real pages live in the storefront; these exist so a redirected API
// client still receives a well-formed response instead of a router 404.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Register handles GET /register.
func (h *NavigationHandler) Register(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "registration required",
		"signup":  "/auth/register",
	})
}

// AccessDenied handles GET /access-denied.
func (h *NavigationHandler) AccessDenied(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"error": "your account does not have access to the requested page",
	})
}
