package api

import (
	"github.com/gofiber/fiber/v3"

	"tourismportal/internal/db"
	"tourismportal/internal/models"
)

// CarouselHandler serves the public gallery feed.
type CarouselHandler struct {
	db *db.DB
}

// NewCarouselHandler creates a new carousel handler.
func NewCarouselHandler(database *db.DB) *CarouselHandler {
	return &CarouselHandler{db: database}
}

// Feed returns the gallery projection of every approved place. Only approved
// places are ever included; the projection is rebuilt on each request.
func (h *CarouselHandler) Feed(c fiber.Ctx) error {
	places, err := h.db.GetApprovedPlaces(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch gallery")
	}

	entries := make([]models.CarouselEntry, 0, len(places))
	for i := range places {
		entries = append(entries, models.NewCarouselEntry(&places[i]))
	}

	return jsonSuccess(c, entries)
}
