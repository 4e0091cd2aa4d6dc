package email

import (
	"context"
	"log"

	"tourismportal/internal/config"
	"tourismportal/internal/models"
)

// AdminEmailGetter is an interface for getting admin notification recipients.
type AdminEmailGetter interface {
	GetAdminEmails(ctx context.Context) ([]string, error)
}

// Notifier sends email notifications for moderation events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
	db        AdminEmailGetter
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, db AdminEmailGetter) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
		db:        db,
	}
}

// NotifyPlaceSubmitted notifies admins that a new place needs review.
func (n *Notifier) NotifyPlaceSubmitted(ctx context.Context, place *models.Place) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyAdminsOnSubmit {
		return
	}

	emails, err := n.db.GetAdminEmails(ctx)
	if err != nil {
		log.Printf("Failed to get admin emails: %v", err)
		return
	}

	if len(emails) == 0 {
		log.Println("No admin emails found for notification")
		return
	}

	subject, htmlBody, textBody := n.templates.PlaceSubmittedForReview(place)
	n.service.SendAsync(emails, subject, htmlBody, textBody)
}

// NotifyPlaceApproved notifies the submitter that their place is live.
func (n *Notifier) NotifyPlaceApproved(ctx context.Context, place *models.Place) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifySubmitterOnReview {
		return
	}

	recipient := submitterEmail(place)
	if recipient == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.PlaceApproved(place)
	n.service.SendAsync([]string{recipient}, subject, htmlBody, textBody)
}

// NotifyPlaceRejected notifies the submitter of a rejection and its remarks.
func (n *Notifier) NotifyPlaceRejected(ctx context.Context, place *models.Place, remarks string) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifySubmitterOnReview {
		return
	}

	recipient := submitterEmail(place)
	if recipient == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.PlaceRejected(place, remarks)
	n.service.SendAsync([]string{recipient}, subject, htmlBody, textBody)
}

// submitterEmail prefers the submitter's account email over the contact email
// typed into the form, since the account email is verified by login.
func submitterEmail(place *models.Place) string {
	if place.SubmitterEmail != "" {
		return place.SubmitterEmail
	}
	return place.EmailAddress
}
