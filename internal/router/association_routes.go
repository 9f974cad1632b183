package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/handler"
	"github.com/solicare/donation-board/internal/middleware"
	"github.com/solicare/donation-board/internal/model"
)

// RegisterAssociation registers the endpoints reserved for
// association accounts: submitting cases and listing their own.
func RegisterAssociation(e *echo.Echo, h *handler.AssociationCaseHandler, jwtSecret string) {
	g := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAssociation),
	)
	g.POST("/cases", h.CreateCase)
	g.GET("/association/cases", h.ListOwn)
}
