package email

import (
	"fmt"
	"html"

	"tourismportal/internal/config"
	"tourismportal/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #047857; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        .success { color: #059669; }
        .error { color: #dc2626; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// PlaceSubmittedForReview generates the email admins receive when a new place
// needs review.
func (t *Templates) PlaceSubmittedForReview(place *models.Place) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] New place pending review: %s", t.cfg.SiteTitle, place.PlaceName)

	content := fmt.Sprintf(`
        <p>A new tourist spot has been submitted and requires your review.</p>

        <div class="info-box">
            <p><span class="label">Place:</span> %s</p>
            <p><span class="label">Address:</span> %s</p>
            <p><span class="label">Description:</span> %s</p>
            <p><span class="label">Submitted by:</span> %s (%s)</p>
        </div>

        <p><a href="%s/admin">Open the moderation dashboard</a> to approve or reject it.</p>`,
		html.EscapeString(place.PlaceName),
		html.EscapeString(place.Address),
		html.EscapeString(place.Description),
		html.EscapeString(place.Name),
		html.EscapeString(place.EmailAddress),
		t.cfg.BaseURL,
	)

	htmlBody = t.baseHTML("New place pending review", content)

	textBody = fmt.Sprintf(
		"A new tourist spot has been submitted and requires your review.\n\n"+
			"Place: %s\nAddress: %s\nDescription: %s\nSubmitted by: %s (%s)\n\n"+
			"Review it at %s/admin\n",
		place.PlaceName, place.Address, place.Description, place.Name, place.EmailAddress, t.cfg.BaseURL,
	)

	return subject, htmlBody, textBody
}

// PlaceApproved generates the email the submitter receives when their place
// goes live.
func (t *Templates) PlaceApproved(place *models.Place) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Your place was approved: %s", t.cfg.SiteTitle, place.PlaceName)

	content := fmt.Sprintf(`
        <p>Good news! Your submission <span class="success">%s</span> was approved and is now visible in the public gallery.</p>

        <p><a href="%s/carousel">See it in the gallery</a>.</p>`,
		html.EscapeString(place.PlaceName),
		t.cfg.BaseURL,
	)

	htmlBody = t.baseHTML("Submission approved", content)

	textBody = fmt.Sprintf(
		"Good news! Your submission %q was approved and is now visible in the public gallery.\n\n"+
			"See it at %s/carousel\n",
		place.PlaceName, t.cfg.BaseURL,
	)

	return subject, htmlBody, textBody
}

// PlaceRejected generates the email the submitter receives when their place
// is rejected, including the moderator's remarks.
func (t *Templates) PlaceRejected(place *models.Place, remarks string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Your place was not approved: %s", t.cfg.SiteTitle, place.PlaceName)

	content := fmt.Sprintf(`
        <p>Your submission <span class="error">%s</span> was not approved.</p>

        <div class="info-box">
            <p><span class="label">Reviewer remarks:</span> %s</p>
        </div>

        <p>You can edit and resubmit it from <a href="%s/dashboard">your dashboard</a>; it will go back through review.</p>`,
		html.EscapeString(place.PlaceName),
		html.EscapeString(remarks),
		t.cfg.BaseURL,
	)

	htmlBody = t.baseHTML("Submission not approved", content)

	textBody = fmt.Sprintf(
		"Your submission %q was not approved.\n\nReviewer remarks: %s\n\n"+
			"You can edit and resubmit it from %s/dashboard; it will go back through review.\n",
		place.PlaceName, remarks, t.cfg.BaseURL,
	)

	return subject, htmlBody, textBody
}
