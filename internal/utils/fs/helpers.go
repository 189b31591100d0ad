// Package fs locates the files a download produced.
package fs

import (
	"runtime"
	"strings"
)

// HasFileExtension checks if the file has one of the given extensions.
func HasFileExtension(fileName string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(fileName), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// escapeGlob makes every filepath.Match metacharacter in s match itself.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[':
			b.WriteByte('[')
			b.WriteRune(r)
			b.WriteByte(']')
		case '\\':
			// Path separator on windows, escape character elsewhere
			if runtime.GOOS == "windows" {
				b.WriteRune(r)
			} else {
				b.WriteString(`[\\]`)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
