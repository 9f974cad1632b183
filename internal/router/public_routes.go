package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/handler"
)

// RegisterPublic registers the unauthenticated catalog and
// subscription endpoints.  cache is the Redis response cache applied
// to the read-heavy list endpoints; pass a no-op middleware when
// caching is disabled.
func RegisterPublic(e *echo.Echo, p *handler.PublicCaseHandler, s *handler.SubscriptionHandler, cache echo.MiddlewareFunc) {
	// Catalog listing with filters, sorting and pagination.
	e.GET("/api/cases", p.ListCases, cache)
	// Featured cases for the home page carousel.
	e.GET("/api/cases/featured", p.ListFeatured, cache)
	// Case detail; 404 for missing or rejected ids.
	e.GET("/api/cases/:id", p.GetCase)
	// View counter; deliberately never cached and permissive on miss.
	e.POST("/api/cases/:id/view", p.RecordView)
	// Urgent-notification opt-in, open to anyone with an email.
	e.POST("/api/subscriptions/urgent", s.UpsertUrgent)
}
