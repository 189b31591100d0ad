// Package builder turns download options into yt-dlp command lines.
package builder

import (
	"fmt"

	"vidfetch/internal/domain/command"
	"vidfetch/internal/models"
)

// VideoDLCommandBuilder builds yt-dlp arguments for a set of options.
type VideoDLCommandBuilder struct {
	Opts *models.DownloadOptions
}

func NewVideoDLCommandBuilder(o *models.DownloadOptions) *VideoDLCommandBuilder {
	return &VideoDLCommandBuilder{
		Opts: o,
	}
}

// VideoFetchArgs returns the yt-dlp argument list, URLs last.
func (vb *VideoDLCommandBuilder) VideoFetchArgs(urls []string) ([]string, error) {
	if vb.Opts == nil {
		return nil, fmt.Errorf("options passed in null, returning no arguments")
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs to download")
	}

	o := vb.Opts
	args := make([]string, 0, 10+len(urls))

	if o.Format != "" {
		args = append(args, command.Format, o.Format)
	}
	if o.OutputTemplate != "" {
		args = append(args, command.Output, o.OutputTemplate)
	}
	if o.UsesCookies() {
		args = append(args, command.CookiePath, o.CookieFile)
	}
	if o.NoPlaylist {
		args = append(args, command.NoPlaylist)
	}
	if o.Quiet {
		args = append(args, command.Quiet)
	}
	if o.Verbose {
		args = append(args, command.Verbose)
	}
	if o.Logger != nil {
		args = append(args, command.Newline)
	}

	for _, u := range urls {
		if u == "" {
			continue
		}
		args = append(args, u)
	}
	return args, nil
}
