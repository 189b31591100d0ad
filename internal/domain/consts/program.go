// Package consts holds fixed program values.
package consts

import "time"

// Program defaults.
const (
	ProgramName = "vidfetch"

	DefaultVideoURL       = "https://www.youtube.com/watch?v=s78np22i9W8"
	DefaultOutputTemplate = "downloaded_video.%(ext)s"
	DefaultCookieEnvVar   = "COOKIE_FILE_PATH"
	DefaultYTDLPPath      = "yt-dlp"

	EnvPrefix = "VIDFETCH"
)

// Format selectors.
const (
	// FormatWithoutCookies prefers a merged mp4/m4a pair and falls back to a single mp4.
	FormatWithoutCookies = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]"
	FormatWithCookies    = "bestvideo[ext=mp4]/bestvideo"
)

// Engine output and shutdown.
const (
	StderrTailLines = 20
	KillWaitDelay   = 2 * time.Second
)
