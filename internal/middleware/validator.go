package middleware

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Input validation and sanitization utilities

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateProfileID checks the path parameter is a UUID
func ValidateProfileID(id string) error {
	if id == "" {
		return fmt.Errorf("profile id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid profile id: %s", id)
	}
	return nil
}

// ValidateEmail validates an optional email field
func ValidateEmail(email string) error {
	if email == "" {
		return nil // Optional field
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ValidateLinkedInURL validates an optional LinkedIn profile URL
func ValidateLinkedInURL(rawURL string) error {
	if rawURL == "" {
		return nil // Optional field
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %s (allowed: http, https)", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return fmt.Errorf("expected a linkedin.com URL, got host: %s", host)
	}
	return nil
}

// ValidatePromptCount bounds the number of generated prompts.
// Zero is allowed and selects the server default.
func ValidatePromptCount(count int) error {
	if count < 0 || count > 100 {
		return fmt.Errorf("prompt count must be between 0 and 100 (0 uses the default)")
	}
	return nil
}
