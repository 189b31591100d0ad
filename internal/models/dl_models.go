package models

import "vidfetch/internal/domain/command"

// DownloadOptions configures a single engine invocation.
type DownloadOptions struct {
	Format         string
	OutputTemplate string
	CookieFile     string // Empty means no cookies

	NoPlaylist bool
	Verbose    bool
	Quiet      bool

	// Logger receives engine output. When nil the engine writes to the process stdout/stderr.
	Logger EngineLogger
}

// UsesCookies reports whether a cookie file is attached.
func (o *DownloadOptions) UsesCookies() bool {
	return o != nil && o.CookieFile != ""
}

// Map renders the options under the engine's own option names.
//
// Optional entries are left out when unset.
func (o *DownloadOptions) Map() map[string]any {
	if o == nil {
		return nil
	}
	m := map[string]any{
		command.OptFormat:  o.Format,
		command.OptOutTmpl: o.OutputTemplate,
	}
	if o.CookieFile != "" {
		m[command.OptCookieFile] = o.CookieFile
	}
	if o.NoPlaylist {
		m[command.OptNoPlaylist] = true
	}
	if o.Logger != nil {
		m[command.OptLogger] = o.Logger
		m[command.OptQuiet] = o.Quiet
		m[command.OptVerbose] = o.Verbose
	} else {
		if o.Quiet {
			m[command.OptQuiet] = true
		}
		if o.Verbose {
			m[command.OptVerbose] = true
		}
	}
	return m
}
