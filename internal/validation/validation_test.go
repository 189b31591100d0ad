package validation_test

import (
	"testing"

	"vidfetch/internal/models"
	"vidfetch/internal/validation"
)

// TestValidateSettingsModel checks settings acceptance and rejection -------------------------------------------------------------
func TestValidateSettingsModel(t *testing.T) {
	good := func() *models.Settings {
		return &models.Settings{
			VideoURL:       "https://www.youtube.com/watch?v=s78np22i9W8",
			OutputTemplate: "downloaded_video.%(ext)s",
			CookieEnvVar:   "COOKIE_FILE_PATH",
			YTDLPPath:      "yt-dlp",
		}
	}

	if err := validation.ValidateSettingsModel(good()); err != nil {
		t.Fatalf("expected valid settings to pass, got: %v", err)
	}

	if err := validation.ValidateSettingsModel(nil); err == nil {
		t.Fatalf("expected error for nil settings, got nil")
	}

	s := good()
	s.OutputTemplate = "  "
	if err := validation.ValidateSettingsModel(s); err == nil {
		t.Fatalf("expected error for empty output template, got nil")
	}

	s = good()
	s.CookieEnvVar = ""
	if err := validation.ValidateSettingsModel(s); err == nil {
		t.Fatalf("expected error for empty cookie variable name, got nil")
	}

	s = good()
	s.DebugLevel = -4
	if err := validation.ValidateSettingsModel(s); err != nil {
		t.Fatalf("expected negative debug level to be clamped, got: %v", err)
	}
	if s.DebugLevel != 0 {
		t.Fatalf("expected debug level 0, got %d", s.DebugLevel)
	}
}

// TestValidateVideoURL runs checks for URL validation ---------------------------------------------------------------------------
func TestValidateVideoURL(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"https://www.youtube.com/watch?v=s78np22i9W8", false},
		{"http://example.com/v", false},
		{"ftp://example.com/v", true},
		{"www.youtube.com/watch", true},
		{"https:///nohost", true},
		{"::::::not-a-url", true},
	}

	for _, tt := range tests {
		err := validation.ValidateVideoURL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVideoURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
