package models

import "context"

// Downloader fetches media for the given URLs using the supplied options.
//
// Implementations block until the engine exits.
type Downloader interface {
	Download(ctx context.Context, urls []string, opts *DownloadOptions) error
}

// EngineLogger receives log lines emitted by the download engine.
type EngineLogger interface {
	Debug(msg string)
	Warning(msg string)
	Error(msg string)
}
