package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"tourismportal/internal/db"
	"tourismportal/internal/email"
	"tourismportal/internal/images"
	"tourismportal/internal/models"
	"tourismportal/internal/validation"
)

// PlaceHandler handles place submission and listing via JSON API.
type PlaceHandler struct {
	db       *db.DB
	images   *images.Store
	notifier *email.Notifier
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(database *db.DB, imageStore *images.Store, notifier *email.Notifier) *PlaceHandler {
	return &PlaceHandler{db: database, images: imageStore, notifier: notifier}
}

// placeFromForm reads the multipart submission fields into a Place. The
// status field is deliberately ignored: submissions are always Pending.
func placeFromForm(c fiber.Ctx) *models.Place {
	return &models.Place{
		Name:          c.FormValue("name"),
		PlaceName:     c.FormValue("place_name"),
		Address:       c.FormValue("address"),
		EmailAddress:  c.FormValue("email_address"),
		ContactNo:     c.FormValue("contact_no"),
		Description:   c.FormValue("description"),
		History:       c.FormValue("history"),
		EntranceFee:   c.FormValue("entrance_fee"),
		Pricing:       c.FormValue("pricing"),
		Activities:    c.FormValue("activities"),
		MapIframe:     c.FormValue("map_iframe"),
		VirtualIframe: c.FormValue("virtual_iframe"),
	}
}

// validatePlace checks required fields and embed URLs. Returns an error
// message, or "" when the submission is acceptable.
func validatePlace(place *models.Place) string {
	missing := validation.ValidatePlaceFields(map[string]string{
		"name":          place.Name,
		"place_name":    place.PlaceName,
		"address":       place.Address,
		"email_address": place.EmailAddress,
		"contact_no":    place.ContactNo,
		"description":   place.Description,
	})
	if missing != "" {
		return missing + " is required"
	}
	if !validation.ValidateEmail(place.EmailAddress) {
		return "invalid contact email address"
	}
	if ok, msg := validation.ValidateEmbedURL(place.MapIframe); !ok {
		return "map embed: " + msg
	}
	if ok, msg := validation.ValidateEmbedURL(place.VirtualIframe); !ok {
		return "virtual tour embed: " + msg
	}
	return ""
}

// Create accepts a multipart place submission with an optional image.
func (h *PlaceHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	place := placeFromForm(c)
	place.CreatedBy = &user.ID
	if place.Name == "" {
		place.Name = user.Name
	}

	if msg := validatePlace(place); msg != "" {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if fh, err := c.FormFile("image_link"); err == nil && fh != nil {
		link, err := h.images.Save(fh)
		if err != nil {
			if errors.Is(err, images.ErrTooLarge) || errors.Is(err, images.ErrUnsupportedType) {
				return jsonError(c, fiber.StatusBadRequest, err.Error())
			}
			return jsonError(c, fiber.StatusInternalServerError, "failed to store image")
		}
		place.ImageLink = link
	}

	if err := h.db.CreatePlace(c.Context(), place); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create place")
	}

	if h.notifier != nil {
		place.SubmitterEmail = user.Email
		h.notifier.NotifyPlaceSubmitted(c.Context(), place)
	}

	return jsonCreated(c, fiber.Map{
		"message": "place submitted for review",
		"place":   place,
	})
}

// List returns the caller's own submissions; admins see every place.
func (h *PlaceHandler) List(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var (
		places []models.Place
		err    error
	)
	if user.IsAdmin() {
		places, err = h.db.GetAllPlaces(c.Context())
	} else {
		places, err = h.db.GetPlacesByUser(c.Context(), user.ID)
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch places")
	}

	if places == nil {
		places = []models.Place{}
	}
	return jsonSuccess(c, places)
}

// ListApproved returns all publicly visible places.
func (h *PlaceHandler) ListApproved(c fiber.Ctx) error {
	places, err := h.db.GetApprovedPlaces(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch places")
	}
	if places == nil {
		places = []models.Place{}
	}
	return jsonSuccess(c, places)
}

// Update applies an owner's resubmission. The place always goes back to
// Pending with its previous review cleared.
func (h *PlaceHandler) Update(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	placeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid place id")
	}

	existing, err := h.db.GetPlaceByID(c.Context(), placeID)
	if err != nil {
		if errors.Is(err, db.ErrPlaceNotFound) {
			return jsonError(c, fiber.StatusNotFound, "place not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch place")
	}
	if existing.CreatedBy == nil || *existing.CreatedBy != user.ID {
		return jsonError(c, fiber.StatusForbidden, "you can only edit your own submissions")
	}

	place := placeFromForm(c)
	place.ID = placeID
	place.ImageLink = existing.ImageLink

	if msg := validatePlace(place); msg != "" {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if fh, err := c.FormFile("image_link"); err == nil && fh != nil {
		link, err := h.images.Save(fh)
		if err != nil {
			if errors.Is(err, images.ErrTooLarge) || errors.Is(err, images.ErrUnsupportedType) {
				return jsonError(c, fiber.StatusBadRequest, err.Error())
			}
			return jsonError(c, fiber.StatusInternalServerError, "failed to store image")
		}
		place.ImageLink = link
	}

	if err := h.db.UpdatePlace(c.Context(), place, user.ID); err != nil {
		if errors.Is(err, db.ErrPlaceNotFound) {
			return jsonError(c, fiber.StatusNotFound, "place not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update place")
	}

	if h.notifier != nil {
		place.SubmitterEmail = user.Email
		h.notifier.NotifyPlaceSubmitted(c.Context(), place)
	}

	return jsonSuccess(c, fiber.Map{
		"message": "place resubmitted for review",
		"place":   place,
	})
}
