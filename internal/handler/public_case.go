// This file defines handlers for the public catalog.  These routes
// are reachable without authentication: donors browse approved cases,
// open details and record views.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/repository"
)

// PublicCaseHandler serves the unauthenticated catalog endpoints.
type PublicCaseHandler struct {
	Cases *repository.CaseRepo
}

func NewPublicCaseHandler(cases *repository.CaseRepo) *PublicCaseHandler {
	return &PublicCaseHandler{Cases: cases}
}

// listMeta echoes the pagination parameters alongside the
// pre-pagination match count.
type listMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ListCases handles GET /api/cases.  Recognised query parameters:
// category and urgency (exact match), q (case-insensitive substring
// over title/summary/description/location), sort (date|urgency|views,
// default date), page (1-based) and limit (default 12, max 50).
func (h *PublicCaseHandler) ListCases(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	limit := 12
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	q := repository.CaseSearchQuery{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Urgency:  strings.TrimSpace(c.QueryParam("urgency")),
		Text:     strings.TrimSpace(c.QueryParam("q")),
		Sort:     strings.TrimSpace(c.QueryParam("sort")),
		Page:     page,
		Limit:    limit,
	}

	items, total, err := h.Cases.Search(q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	// Re-apply the clamps for the echoed meta block.
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"meta":  listMeta{Total: total, Page: page, Limit: limit},
	})
}

// ListFeatured handles GET /api/cases/featured: approved featured
// cases, newest first, at most eight.
func (h *PublicCaseHandler) ListFeatured(c echo.Context) error {
	items, err := h.Cases.ListFeatured(8)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetCase handles GET /api/cases/:id.  Missing and rejected cases
// are both reported as not found; pending cases remain reachable by
// direct id.
func (h *PublicCaseHandler) GetCase(c echo.Context) error {
	item, err := h.Cases.GetVisible(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusOK, item)
}

// RecordView handles POST /api/cases/:id/view.  The increment is
// permissive on purpose: an unknown or rejected id still returns ok
// so the detail page never fails over its own analytics.
func (h *PublicCaseHandler) RecordView(c echo.Context) error {
	if err := h.Cases.RecordView(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
