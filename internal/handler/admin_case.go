package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/model"
	"github.com/solicare/donation-board/internal/queue"
	"github.com/solicare/donation-board/internal/repository"
)

// AdminCaseHandler serves the moderation endpoints.  Publish is
// optional: when set, approving an urgent case emits a domain event
// for the notification consumer.  Publish failures are logged and
// swallowed because the approval itself must not depend on the
// broker being up.  InvalidateCache, also optional, drops the cached
// catalog responses after a state change so donors see the change on
// the next read.
type AdminCaseHandler struct {
	Cases           *repository.CaseRepo
	Publish         func(ctx context.Context, ev queue.CaseApprovedEvent) error
	InvalidateCache func(ctx context.Context)
}

func NewAdminCaseHandler(cases *repository.CaseRepo) *AdminCaseHandler {
	return &AdminCaseHandler{Cases: cases}
}

// ListCases handles GET /api/admin/cases.  Unlike the public
// catalog it returns every case; the optional ?status= parameter
// narrows the list by exact match.
func (h *AdminCaseHandler) ListCases(c echo.Context) error {
	items, err := h.Cases.ListByStatus(strings.TrimSpace(c.QueryParam("status")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/cases/:id/status.  Any
// transition within the fixed status set is accepted; the moderation
// UI only drives PENDING to APPROVED/REJECTED but admins may also
// move a case back to PENDING.
func (h *AdminCaseHandler) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	item, err := h.Cases.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		case errors.Is(err, repository.ErrCaseNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
		}
	}

	if h.Publish != nil && item.Status == model.StatusApproved && model.UrgencyRank(item.Urgency) > 1 {
		ev := queue.CaseApprovedEvent{
			CaseID:     item.ID,
			Title:      item.Title,
			Category:   item.Category,
			Urgency:    item.Urgency,
			OwnerEmail: item.OwnerEmail,
			ApprovedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Publish(c.Request().Context(), ev); err != nil {
			c.Logger().Warnf("publish case.approved failed for %s: %v", item.ID, err)
		}
	}
	if h.InvalidateCache != nil {
		h.InvalidateCache(c.Request().Context())
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "item": item})
}

type featuredReq struct {
	Featured bool `json:"featured"`
}

// UpdateFeatured handles PATCH /api/admin/cases/:id/featured,
// toggling the home-page highlight flag.
func (h *AdminCaseHandler) UpdateFeatured(c echo.Context) error {
	var req featuredReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	item, err := h.Cases.SetFeatured(c.Param("id"), req.Featured)
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	if h.InvalidateCache != nil {
		h.InvalidateCache(c.Request().Context())
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "item": item})
}

// Stats handles GET /api/admin/stats: aggregate case counts per
// moderation state.
func (h *AdminCaseHandler) Stats(c echo.Context) error {
	counts, err := h.Cases.CountByStatus()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusOK, counts)
}
