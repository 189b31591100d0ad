package models

// Settings holds the values a run is configured with.
type Settings struct {
	VideoURL       string
	OutputTemplate string
	CookieEnvVar   string
	YTDLPPath      string
	DebugLevel     int
}
