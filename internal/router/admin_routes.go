package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/handler"
	"github.com/solicare/donation-board/internal/middleware"
	"github.com/solicare/donation-board/internal/model"
)

// RegisterAdmin registers the moderation endpoints.  All routes
// require a valid JWT carrying the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminCaseHandler, jwtSecret string) {
	g := e.Group(
		"/api/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	g.GET("/cases", h.ListCases)
	g.PATCH("/cases/:id/status", h.UpdateStatus)
	g.PATCH("/cases/:id/featured", h.UpdateFeatured)
	g.GET("/stats", h.Stats)
}
