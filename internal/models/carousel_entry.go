package models

import "github.com/google/uuid"

// CarouselEntry is the read-only projection of an approved place served to
// the public gallery. Recomputed on every fetch, never cached.
type CarouselEntry struct {
	ID            uuid.UUID `json:"id"`
	Src           string    `json:"src"` // image link
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	Contact       string    `json:"contact"`
	Email         string    `json:"email"`
	MapIframe     string    `json:"map_iframe"`
	VirtualIframe string    `json:"virtual_iframe"`
}

// NewCarouselEntry projects an approved place into its gallery form.
func NewCarouselEntry(p *Place) CarouselEntry {
	return CarouselEntry{
		ID:            p.ID,
		Src:           p.ImageLink,
		Title:         p.PlaceName,
		Description:   p.Description,
		Address:       p.Address,
		Contact:       p.ContactNo,
		Email:         p.EmailAddress,
		MapIframe:     p.MapIframe,
		VirtualIframe: p.VirtualIframe,
	}
}
