package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/verdantis/nursery-system/internal/api/metrics"
	"github.com/verdantis/nursery-system/internal/core/access"
	"github.com/verdantis/nursery-system/internal/core/domain"
)

// redirectResponse is the JSON envelope returned to API clients on denial.
// Browser clients get a plain 303 to the same path instead.
type redirectResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Gate enforces role-based access. It evaluates the identity injected by the
// Session middleware against the required roles and, on denial, fires exactly
// one redirect side effect per request:
//
//   - no identity   → /register (anonymous callers are sent to sign up)
//   - wrong role    → /access-denied
//
// Granted requests pass through untouched. The gate never panics and never
// returns an error to the caller; every outcome is a response.
func Gate(required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(identityKey).(*domain.Identity)

			decision := access.Decide(identity, required)
			metrics.GateDecisionsTotal.WithLabelValues(string(decision.State)).Inc()

			if decision.HasAccess {
				return next(c)
			}

			status := http.StatusForbidden
			msg := "access denied"
			if decision.State == access.DeniedNoIdentity {
				status = http.StatusUnauthorized
				msg = "registration required"
			}

			if wantsJSON(c) {
				return c.JSON(status, redirectResponse{Error: msg, Redirect: decision.RedirectPath})
			}
			return c.Redirect(http.StatusSeeOther, decision.RedirectPath)
		}
	}
}

// Identity returns the identity attached to the request, or nil for anonymous
// callers.
func Identity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

// wantsJSON reports whether the client asked for a JSON response. API clients
// get the redirect path in the body; everything else gets a real 303.
func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get("Accept")
	return strings.Contains(accept, echo.MIMEApplicationJSON)
}
