package models

import (
	"time"

	"github.com/google/uuid"
)

// Moderation status constants. Every place and user account carries one.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// ValidStatus reports whether s is one of the three moderation statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Place represents a tourist-spot submission.
type Place struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"` // submitter display name
	PlaceName     string     `json:"place_name"`
	Address       string     `json:"address"`
	EmailAddress  string     `json:"email_address"`
	ContactNo     string     `json:"contact_no"`
	Description   string     `json:"description"`
	History       string     `json:"history,omitempty"`
	EntranceFee   string     `json:"entrance_fee,omitempty"`
	Pricing       string     `json:"pricing,omitempty"`
	Activities    string     `json:"activities,omitempty"`
	ImageLink     string     `json:"image_link"`
	MapIframe     string     `json:"map_iframe"`
	VirtualIframe string     `json:"virtual_iframe"`
	Status        string     `json:"status"` // Pending, Approved, Rejected
	Remarks       string     `json:"remarks"`
	CreatedBy     *uuid.UUID `json:"created_by"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Populated via JOIN for the admin review view
	SubmitterEmail string `json:"submitter_email,omitempty"`
}

// IsApproved returns true if the place is publicly visible.
func (p *Place) IsApproved() bool {
	return p.Status == StatusApproved
}

// IsPending returns true if the place is awaiting moderation.
func (p *Place) IsPending() bool {
	return p.Status == StatusPending
}
