package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// performs a fast-fail check before any service call: handlers behind the
// gate must always see an identity, so its absence means the route was wired
// without the gate, so reject with 401 rather than proceed unauthenticated.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get("identity").(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, nil
}
