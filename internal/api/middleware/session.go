package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/api/metrics"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

// identityKey is the echo context key under which the resolved identity is stored.
const identityKey = "identity"

// Session resolves the bearer token into an identity and injects it into the
// request context. It never rejects a request: anonymous and unresolvable
// callers pass through with no identity, and the role gate decides what they
// may reach.
func Session(resolver ports.SessionResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				metrics.SessionsResolvedTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}

			identity, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				// Store outage: treat the caller as anonymous rather than 500.
				metrics.SessionsResolvedTotal.WithLabelValues("error").Inc()
				log.Error().Err(err).Msg("session resolution failed")
				return next(c)
			}
			if identity == nil {
				metrics.SessionsResolvedTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}

			metrics.SessionsResolvedTotal.WithLabelValues("identified").Inc()
			c.Set(identityKey, identity)
			c.Set("token", token)
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. Malformed
// headers yield an empty token.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
