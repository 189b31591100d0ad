package consts

// Orchestrator log lines.
const (
	MsgEnvVarMissing     = "❌ FAILED: Required environment variable '%s' not found."
	MsgCookieFileMissing = "❌ FAILED: Cookie file not found at path: %s"
	MsgCookieFileFound   = "🍪 SUCCESS: Using cookie file found at: %s"
	MsgWithoutCookies    = "Attempting download WITHOUT cookies."
	MsgAttempting        = "Attempting to download video from: %s"
	MsgDownloadComplete  = "✅ SUCCESS: Video download attempt completed."
	MsgCheckOutput       = "Check logs for file saved as: %s"
	MsgDownloadFailed    = "❌ FAILED: An error occurred during download."
)
