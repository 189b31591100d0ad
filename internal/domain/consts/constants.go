package consts

// AllVidExtensions lists the containers yt-dlp may produce for a video download.
var AllVidExtensions = []string{".3gp", ".avi", ".f4v", ".flv", ".m4a", ".m4v", ".mkv",
	".mov", ".mp4", ".mpeg", ".mpg", ".ogm", ".ogv",
	".ts", ".vob", ".webm", ".wmv"}

// ExtPlaceholder is the output template field yt-dlp replaces with the chosen extension.
const ExtPlaceholder = "%(ext)s"
