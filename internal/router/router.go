// Package router defines how HTTP routes are registered for the API.
// Registration is split by audience: open routes here, then public
// catalog, association and admin groups in their own files, each
// attaching the JWT and role middleware it needs at construction
// time.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/handler"
	"github.com/solicare/donation-board/internal/middleware"
)

// RegisterRoutes registers routes that carry no authentication and
// no domain logic.  Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", handler.Health)
}

// RegisterAuth registers the login endpoint (rate limited) and the
// authenticated identity echo.  limiter is the token-bucket
// middleware; pass a no-op when Redis is unavailable.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	e.POST("/api/auth/login", a.Login, limiter)

	g := e.Group(
		"/api/auth",
		middleware.JWTAuth(jwtSecret),
	)
	g.GET("/me", a.Me)
}
