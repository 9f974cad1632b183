package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/model"
	"github.com/solicare/donation-board/internal/repository"
)

// AssociationCaseHandler serves the endpoints available to
// authenticated associations: submitting a case and listing their own
// submissions.  Role enforcement happens in middleware; these
// handlers only need the caller's email from the token claims.
type AssociationCaseHandler struct {
	Cases *repository.CaseRepo
}

func NewAssociationCaseHandler(cases *repository.CaseRepo) *AssociationCaseHandler {
	return &AssociationCaseHandler{Cases: cases}
}

// createCaseReq is the validated submission payload.  Server-owned
// fields (id, owner, status, counters, featured, createdAt) are not
// bindable here at all: whatever the client sends for them is
// dropped before the record is built.
type createCaseReq struct {
	Title        string   `json:"title" validate:"required,min=3,max=140"`
	Summary      string   `json:"summary" validate:"omitempty,max=300"`
	Description  string   `json:"description" validate:"required,min=10"`
	Category     string   `json:"category" validate:"required,max=60"`
	Urgency      string   `json:"urgency" validate:"omitempty,oneof=NORMAL URGENT TRES_URGENT"`
	Cha9a9aURL   string   `json:"cha9a9aUrl" validate:"required,url"`
	Photos       []string `json:"photos" validate:"omitempty,max=10,dive,url"`
	GoalAmount   float64  `json:"goalAmount" validate:"omitempty,gte=0"`
	LocationText string   `json:"locationText" validate:"omitempty,max=140"`
	Lat          *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng          *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
}

// CreateCase handles POST /api/cases for associations.  The payload
// is validated field by field; failures return a structured error
// list and nothing is written.  On success the created record is
// returned with its server-assigned fields.
func (h *AssociationCaseHandler) CreateCase(c echo.Context) error {
	var req createCaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  fieldErrors(err),
		})
	}

	email, err := callerEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	if req.Urgency == "" {
		req.Urgency = model.UrgencyNormal
	}

	item, err := h.Cases.Create(email, model.Case{
		Title:        req.Title,
		Summary:      req.Summary,
		Description:  req.Description,
		Category:     req.Category,
		Urgency:      req.Urgency,
		Cha9a9aURL:   req.Cha9a9aURL,
		Photos:       req.Photos,
		GoalAmount:   req.GoalAmount,
		LocationText: req.LocationText,
		Lat:          req.Lat,
		Lng:          req.Lng,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "item": item})
}

// ListOwn handles GET /api/association/cases: every case submitted
// by the calling association, whatever its moderation status.
func (h *AssociationCaseHandler) ListOwn(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	items, err := h.Cases.ListByOwner(email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
