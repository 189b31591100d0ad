package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(string)   {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func TestDownloadOptionsMap(t *testing.T) {
	plain := &DownloadOptions{Format: "best", OutputTemplate: "out.%(ext)s"}
	assert.Equal(t, map[string]any{"format": "best", "outtmpl": "out.%(ext)s"}, plain.Map())
	assert.False(t, plain.UsesCookies())

	l := nopLogger{}
	withCookies := &DownloadOptions{
		Format:         "bestvideo",
		OutputTemplate: "out.%(ext)s",
		CookieFile:     "/tmp/cookies.txt",
		NoPlaylist:     true,
		Verbose:        true,
		Logger:         l,
	}
	assert.Equal(t, map[string]any{
		"format":     "bestvideo",
		"outtmpl":    "out.%(ext)s",
		"cookiefile": "/tmp/cookies.txt",
		"noplaylist": true,
		"quiet":      false,
		"verbose":    true,
		"logger":     l,
	}, withCookies.Map())
	assert.True(t, withCookies.UsesCookies())

	var none *DownloadOptions
	assert.Nil(t, none.Map())
	assert.False(t, none.UsesCookies())
}
