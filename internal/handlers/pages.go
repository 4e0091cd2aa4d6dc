// Package handlers contains the server-rendered portal pages. All data access
// and mutation goes through the JSON API in handlers/api; these pages are the
// HTML shells around it.
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"tourismportal/internal/carousel"
	"tourismportal/internal/config"
	"tourismportal/internal/db"
	"tourismportal/internal/middleware"
	"tourismportal/internal/models"
)

// MergeBranding adds site branding to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	data["SiteLogoURL"] = cfg.SiteLogoURL
	return data
}

// PageHandler renders the portal pages.
type PageHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(database *db.DB, cfg *config.Config) *PageHandler {
	return &PageHandler{db: database, cfg: cfg}
}

// render merges branding and the optionally-authenticated user into the
// template data before rendering.
func (h *PageHandler) render(c fiber.Ctx, name string, data fiber.Map) error {
	data["User"] = middleware.UserFromContext(c)
	return c.Render(name, MergeBranding(data, h.cfg))
}

// Landing renders the public landing page.
func (h *PageHandler) Landing(c fiber.Ctx) error {
	return h.render(c, "index", fiber.Map{
		"Title": h.cfg.SiteTitle,
	})
}

// Auth renders the login/register page.
func (h *PageHandler) Auth(c fiber.Ctx) error {
	return h.render(c, "auth", fiber.Map{
		"Title": "Sign in",
	})
}

// Dashboard renders the submission form shell. The page script redirects to
// /auth when no token is stored; the API enforces authentication server-side.
func (h *PageHandler) Dashboard(c fiber.Ctx) error {
	return h.render(c, "dashboard", fiber.Map{
		"Title": "Submit a place",
	})
}

// Admin renders the moderation dashboard shell, gated the same way as
// Dashboard but additionally requiring the admin role via the API.
func (h *PageHandler) Admin(c fiber.Ctx) error {
	return h.render(c, "admin", fiber.Map{
		"Title": "Moderation",
	})
}

// carouselView is the template payload for one gallery render.
type carouselView struct {
	Entries     []models.CarouselEntry
	Current     models.CarouselEntry
	Index       int
	NextIndex   int
	PrevIndex   int
	Position    int
	Total       int
	StripOffset int
	Panel       string
	ShowContact bool
	ShowMap     bool
	ShowTour    bool
}

// Carousel renders the public gallery. Navigation state travels in the query
// string (?i=2&panel=map); the iframe embeds are only emitted when their
// panel is the open one, so they load lazily.
func (h *PageHandler) Carousel(c fiber.Ctx) error {
	places, err := h.db.GetApprovedPlaces(c.Context())
	if err != nil {
		return err
	}

	entries := make([]models.CarouselEntry, 0, len(places))
	for i := range places {
		entries = append(entries, models.NewCarouselEntry(&places[i]))
	}

	state := carousel.New(len(entries))
	if state.Empty() {
		return h.render(c, "carousel", fiber.Map{
			"Title": "Gallery",
			"Empty": true,
		})
	}

	if i, err := strconv.Atoi(c.Query("i")); err == nil {
		state.Select(i)
	}
	panel := carousel.ParsePanel(c.Query("panel"))
	if panel != carousel.PanelNone {
		state.TogglePanel(panel)
	}

	position, total := state.Position()
	view := carouselView{
		Entries:     entries,
		Current:     entries[state.Index()],
		Index:       state.Index(),
		NextIndex:   (state.Index() + 1) % total,
		PrevIndex:   (state.Index() - 1 + total) % total,
		Position:    position,
		Total:       total,
		StripOffset: state.StripOffset(),
		Panel:       state.ActivePanel().String(),
		ShowContact: state.ActivePanel() == carousel.PanelContact,
		ShowMap:     state.ActivePanel() == carousel.PanelMap,
		ShowTour:    state.ActivePanel() == carousel.PanelTour,
	}

	return h.render(c, "carousel", fiber.Map{
		"Title": "Gallery",
		"Empty": false,
		"View":  view,
	})
}
