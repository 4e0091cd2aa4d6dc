package api

import (
	"testing"

	"tourismportal/internal/models"
)

func completePlace() *models.Place {
	return &models.Place{
		Name:         "Maria Santos",
		PlaceName:    "Hidden Falls",
		Address:      "Barangay Uno",
		EmailAddress: "falls@example.com",
		ContactNo:    "0900-123-4567",
		Description:  "A waterfall at the end of a forest trail.",
	}
}

func TestValidatePlace(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Place)
		wantMsg string
	}{
		{
			name:    "complete submission",
			mutate:  func(p *models.Place) {},
			wantMsg: "",
		},
		{
			name:    "missing place name",
			mutate:  func(p *models.Place) { p.PlaceName = "" },
			wantMsg: "place_name is required",
		},
		{
			name:    "missing address",
			mutate:  func(p *models.Place) { p.Address = "" },
			wantMsg: "address is required",
		},
		{
			name:    "missing description",
			mutate:  func(p *models.Place) { p.Description = "" },
			wantMsg: "description is required",
		},
		{
			name:    "bad contact email",
			mutate:  func(p *models.Place) { p.EmailAddress = "not-an-email" },
			wantMsg: "invalid contact email address",
		},
		{
			name:    "javascript map embed",
			mutate:  func(p *models.Place) { p.MapIframe = "javascript:alert(1)" },
			wantMsg: "map embed: URL must use http:// or https:// scheme",
		},
		{
			name:    "javascript tour embed",
			mutate:  func(p *models.Place) { p.VirtualIframe = "javascript:alert(1)" },
			wantMsg: "virtual tour embed: URL must use http:// or https:// scheme",
		},
		{
			name: "valid embeds",
			mutate: func(p *models.Place) {
				p.MapIframe = "https://www.google.com/maps/embed?pb=abc"
				p.VirtualIframe = "https://tour.example.com/falls"
			},
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			place := completePlace()
			tt.mutate(place)
			if got := validatePlace(place); got != tt.wantMsg {
				t.Errorf("validatePlace() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestUserPayloadOmitsPasswordHash(t *testing.T) {
	user := &models.User{
		Name:         "Maria Santos",
		Email:        "maria@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         models.RoleUser,
		Status:       models.StatusApproved,
	}

	payload := userPayload(user)

	for key, value := range payload {
		if s, ok := value.(string); ok && s == user.PasswordHash {
			t.Errorf("payload field %q leaks the password hash", key)
		}
	}
	if payload["email"] != "maria@example.com" {
		t.Errorf("payload email = %v, want maria@example.com", payload["email"])
	}
	if payload["role"] != models.RoleUser {
		t.Errorf("payload role = %v, want %v", payload["role"], models.RoleUser)
	}
}
