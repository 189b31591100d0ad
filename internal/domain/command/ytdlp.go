// Package command holds yt-dlp flag constants.
package command

const (
	YTDLP      = "yt-dlp"
	CookiePath = "--cookies"
	Format     = "-f"
	Newline    = "--newline"
	NoPlaylist = "--no-playlist"
	Output     = "-o"
	Quiet      = "--quiet"
	Verbose    = "--verbose"
)

// Output line prefixes yt-dlp uses to mark severity.
const (
	PrefixDebug   = "[debug] "
	PrefixWarning = "WARNING:"
	PrefixError   = "ERROR:"
)

// Option map keys as named by yt-dlp's embedding API.
const (
	OptFormat     = "format"
	OptOutTmpl    = "outtmpl"
	OptCookieFile = "cookiefile"
	OptNoPlaylist = "noplaylist"
	OptQuiet      = "quiet"
	OptVerbose    = "verbose"
	OptLogger     = "logger"
)
