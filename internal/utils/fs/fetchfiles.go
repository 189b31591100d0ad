package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vidfetch/internal/domain/consts"
)

// OutputFile is a finished file matching the output template.
type OutputFile struct {
	Path string
	Size int64
}

// FindOutputs returns the finished video files matching an output template such as
// "downloaded_video.%(ext)s". Partial and fragment files are skipped.
func FindOutputs(template string) ([]OutputFile, error) {
	if !strings.Contains(template, consts.ExtPlaceholder) {
		return statOutputs([]string{template})
	}

	parts := strings.Split(filepath.Clean(template), consts.ExtPlaceholder)
	for i, part := range parts {
		parts[i] = escapeGlob(part)
	}
	pattern := strings.Join(parts, "*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid output template %q: %w", template, err)
	}

	filtered := matches[:0]
	for _, m := range matches {
		if HasFileExtension(m, consts.AllVidExtensions) {
			filtered = append(filtered, m)
		}
	}
	sort.Strings(filtered)
	return statOutputs(filtered)
}

func statOutputs(paths []string) ([]OutputFile, error) {
	out := make([]OutputFile, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("video file verification failed: %w", err)
		}
		if info.IsDir() {
			continue
		}
		out = append(out, OutputFile{Path: p, Size: info.Size()})
	}
	return out, nil
}
