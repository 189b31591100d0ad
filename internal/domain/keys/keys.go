// Package keys holds the viper keys used across the program.
package keys

// Download target
const (
	VideoURL       string = "video-url"
	OutputTemplate string = "output-template"
	CookieEnvVar   string = "cookie-env-var"
)

// Engine
const (
	YTDLPPath string = "ytdlp-path"
)

// Logging
const (
	DebugLevel string = "debug-level"
)
