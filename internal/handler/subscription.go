package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/repository"
)

// SubscriptionHandler serves the urgent-notification opt-in endpoint.
type SubscriptionHandler struct {
	Subs *repository.SubscriptionRepo
}

func NewSubscriptionHandler(subs *repository.SubscriptionRepo) *SubscriptionHandler {
	return &SubscriptionHandler{Subs: subs}
}

type subscribeReq struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
}

// UpsertUrgent handles POST /api/subscriptions/urgent.  The call is
// idempotent: repeating it with the same email leaves one record
// carrying the latest flag.
func (h *SubscriptionHandler) UpsertUrgent(c echo.Context) error {
	var req subscribeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := h.Subs.Upsert(req.Email, req.Subscribed); err != nil {
		if errors.Is(err, repository.ErrEmailRequired) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "email required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
