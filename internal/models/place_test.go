package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{"pending", StatusPending, true},
		{"approved", StatusApproved, true},
		{"rejected", StatusRejected, true},
		{"lowercase", "pending", false},
		{"empty", "", false},
		{"unknown", "Archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidStatus(tt.status); got != tt.expected {
				t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestPlace_StatusPredicates(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		wantApproved bool
		wantPending  bool
	}{
		{"pending place", StatusPending, false, true},
		{"approved place", StatusApproved, true, false},
		{"rejected place", StatusRejected, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			place := &Place{Status: tt.status}
			if got := place.IsApproved(); got != tt.wantApproved {
				t.Errorf("IsApproved() = %v, want %v", got, tt.wantApproved)
			}
			if got := place.IsPending(); got != tt.wantPending {
				t.Errorf("IsPending() = %v, want %v", got, tt.wantPending)
			}
		})
	}
}

func TestNewCarouselEntry(t *testing.T) {
	place := &Place{
		ID:            uuid.New(),
		Name:          "Maria Santos",
		PlaceName:     "Hidden Falls",
		Address:       "Barangay Uno",
		EmailAddress:  "falls@example.com",
		ContactNo:     "0900-123-4567",
		Description:   "A waterfall at the end of a forest trail.",
		ImageLink:     "/storage/falls.jpg",
		MapIframe:     "https://www.google.com/maps/embed?pb=abc",
		VirtualIframe: "https://tour.example.com/falls",
		Status:        StatusApproved,
		Remarks:       "should never surface publicly",
	}

	entry := NewCarouselEntry(place)

	if entry.ID != place.ID {
		t.Errorf("ID = %v, want %v", entry.ID, place.ID)
	}
	if entry.Title != place.PlaceName {
		t.Errorf("Title = %q, want %q", entry.Title, place.PlaceName)
	}
	if entry.Src != place.ImageLink {
		t.Errorf("Src = %q, want %q", entry.Src, place.ImageLink)
	}
	if entry.Description != place.Description {
		t.Errorf("Description = %q, want %q", entry.Description, place.Description)
	}
	if entry.Address != place.Address {
		t.Errorf("Address = %q, want %q", entry.Address, place.Address)
	}
	if entry.Contact != place.ContactNo {
		t.Errorf("Contact = %q, want %q", entry.Contact, place.ContactNo)
	}
	if entry.Email != place.EmailAddress {
		t.Errorf("Email = %q, want %q", entry.Email, place.EmailAddress)
	}
	if entry.MapIframe != place.MapIframe {
		t.Errorf("MapIframe = %q, want %q", entry.MapIframe, place.MapIframe)
	}
	if entry.VirtualIframe != place.VirtualIframe {
		t.Errorf("VirtualIframe = %q, want %q", entry.VirtualIframe, place.VirtualIframe)
	}
}
