package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// EmailPattern is a pragmatic email check; the mail server is the final judge.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidateEmail checks if an address looks like an email.
func ValidateEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	return EmailPattern.MatchString(email)
}

// ValidatePassword checks password requirements. Returns an empty message on
// success.
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, "Password must be at least 8 characters"
	}
	return true, ""
}

// ValidateName checks a display name is present and within bounds.
func ValidateName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && len(trimmed) <= 100
}

// ValidateRemarks checks that moderation remarks are non-empty after
// trimming. Required for every rejection.
func ValidateRemarks(remarks string) bool {
	return strings.TrimSpace(remarks) != ""
}

// ValidateEmbedURL checks if an embed URL is valid and uses an allowed scheme
// (http/https only). This prevents javascript:, data:, vbscript:, and other
// dangerous URL schemes from ending up in an iframe src.
// Empty values are allowed since embeds are optional.
func ValidateEmbedURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return true, ""
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// RequiredPlaceFields lists the submission fields that must be present.
var RequiredPlaceFields = []string{"name", "place_name", "address", "email_address", "contact_no", "description"}

// ValidatePlaceFields checks the required submission fields. Returns the name
// of the first missing field, or "" when all are present.
func ValidatePlaceFields(fields map[string]string) string {
	for _, key := range RequiredPlaceFields {
		if strings.TrimSpace(fields[key]) == "" {
			return key
		}
	}
	return ""
}
