package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"tourismportal/internal/db"
	"tourismportal/internal/email"
	"tourismportal/internal/metrics"
	"tourismportal/internal/models"
	"tourismportal/internal/validation"
)

// ModerationHandler handles place and account review via JSON API.
// All routes are admin-gated by the router.
type ModerationHandler struct {
	db       *db.DB
	notifier *email.Notifier
}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler(database *db.DB, notifier *email.Notifier) *ModerationHandler {
	return &ModerationHandler{db: database, notifier: notifier}
}

// statusUpdateRequest is the decision body. Old clients sent the remarks
// under several field names; resolveRemarks picks the canonical one.
type statusUpdateRequest struct {
	Status           string `json:"status"`
	Remarks          string `json:"remarks"`
	RejectionRemarks string `json:"rejection_remarks"`
	Remark           string `json:"remark"`
	Comment          string `json:"comment"`
}

// resolveRemarks returns the canonical remarks value: the `remarks` field
// wins, then the legacy aliases in a fixed order. The result is trimmed.
func resolveRemarks(req *statusUpdateRequest) string {
	for _, v := range []string{req.Remarks, req.RejectionRemarks, req.Remark, req.Comment} {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ListPending returns all places awaiting review.
func (h *ModerationHandler) ListPending(c fiber.Ctx) error {
	places, err := h.db.GetPendingPlaces(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch pending places")
	}
	if places == nil {
		places = []models.Place{}
	}
	return jsonSuccess(c, places)
}

// UpdatePlaceStatus records an approve or reject decision on a pending place.
func (h *ModerationHandler) UpdatePlaceStatus(c fiber.Ctx) error {
	reviewer, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	placeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid place id")
	}

	var req statusUpdateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		return jsonError(c, fiber.StatusBadRequest, "status must be Approved or Rejected")
	}

	remarks := resolveRemarks(&req)
	if req.Status == models.StatusRejected && !validation.ValidateRemarks(remarks) {
		return jsonError(c, fiber.StatusBadRequest, "rejection requires remarks")
	}
	if req.Status == models.StatusApproved {
		remarks = ""
	}

	place, err := h.db.GetPlaceByID(c.Context(), placeID)
	if err != nil {
		if errors.Is(err, db.ErrPlaceNotFound) {
			return jsonError(c, fiber.StatusNotFound, "place not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch place")
	}

	if err := h.db.SetPlaceStatus(c.Context(), placeID, req.Status, remarks, reviewer.ID); err != nil {
		switch {
		case errors.Is(err, db.ErrPlaceNotPending):
			return jsonError(c, fiber.StatusConflict, "place has already been reviewed")
		case errors.Is(err, db.ErrPlaceNotFound):
			return jsonError(c, fiber.StatusNotFound, "place not found")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "failed to update status")
		}
	}

	metrics.RecordModerationDecision(strings.ToLower(req.Status))

	if h.notifier != nil {
		if req.Status == models.StatusApproved {
			h.notifier.NotifyPlaceApproved(c.Context(), place)
		} else {
			h.notifier.NotifyPlaceRejected(c.Context(), place, remarks)
		}
	}

	return jsonSuccess(c, fiber.Map{
		"message":    "place " + strings.ToLower(req.Status),
		"place_name": place.PlaceName,
		"status":     req.Status,
		"remarks":    remarks,
	})
}

// ListPendingUsers returns accounts awaiting review.
func (h *ModerationHandler) ListPendingUsers(c fiber.Ctx) error {
	users, err := h.db.GetPendingUsers(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch pending users")
	}
	if users == nil {
		users = []models.User{}
	}
	return jsonSuccess(c, users)
}

// UpdateUserStatus records an approve or reject decision on a pending account.
func (h *ModerationHandler) UpdateUserStatus(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req statusUpdateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		return jsonError(c, fiber.StatusBadRequest, "status must be Approved or Rejected")
	}

	remarks := resolveRemarks(&req)
	if req.Status == models.StatusRejected && !validation.ValidateRemarks(remarks) {
		return jsonError(c, fiber.StatusBadRequest, "rejection requires remarks")
	}
	if req.Status == models.StatusApproved {
		remarks = ""
	}

	if err := h.db.SetUserStatus(c.Context(), userID, req.Status, remarks); err != nil {
		switch {
		case errors.Is(err, db.ErrUserNotPending):
			return jsonError(c, fiber.StatusConflict, "user has already been reviewed")
		case errors.Is(err, db.ErrUserNotFound):
			return jsonError(c, fiber.StatusNotFound, "user not found")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "failed to update status")
		}
	}

	return jsonSuccess(c, fiber.Map{
		"message": "user " + strings.ToLower(req.Status),
		"status":  req.Status,
		"remarks": remarks,
	})
}
