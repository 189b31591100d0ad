// Package validation checks run settings before a download starts.
package validation

import (
	"fmt"
	"net/url"
	"strings"

	"vidfetch/internal/models"
)

// ValidateSettingsModel validates correct Settings values.
func ValidateSettingsModel(s *models.Settings) error {
	if s == nil {
		return fmt.Errorf("settings model is nil")
	}

	if err := ValidateVideoURL(s.VideoURL); err != nil {
		return err
	}

	if strings.TrimSpace(s.OutputTemplate) == "" {
		return fmt.Errorf("output template is empty")
	}

	if strings.TrimSpace(s.CookieEnvVar) == "" {
		return fmt.Errorf("cookie environment variable name is empty")
	}

	s.DebugLevel = max(s.DebugLevel, 0)
	return nil
}

// ValidateVideoURL ensures u is an absolute http(s) URL with a host.
func ValidateVideoURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid video URL %q: %w", u, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("video URL %q must use http or https", u)
	}
	if parsed.Hostname() == "" {
		return fmt.Errorf("video URL %q has no host", u)
	}
	return nil
}
