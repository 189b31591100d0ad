package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Setup(&buf, level)
	t.Cleanup(func() { Setup(nil, 0) })
	return &buf
}

func TestLevelsAndFormat(t *testing.T) {
	buf := capture(t, 0)

	I("Attempting to download video from: %s", "https://example.com/v")
	E(0, "FAILED: %s", "boom")
	W("careful")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], " - INFO - Attempting to download video from: https://example.com/v")
	assert.Contains(t, lines[1], " - ERROR - FAILED: boom")
	assert.Contains(t, lines[1], "file=log_test.go")
	assert.Contains(t, lines[1], "func=")
	assert.Contains(t, lines[2], " - WARN - careful")
}

func TestDebugGating(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  bool
	}{
		{"hidden at level zero", 0, false},
		{"shown at level one", 1, true},
		{"shown above", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.level)

			msg := D(1, "cookie count %d", 4)
			if tt.want {
				assert.Equal(t, "cookie count 4", msg)
				assert.Contains(t, buf.String(), " - DEBUG - cookie count 4")
			} else {
				assert.Empty(t, msg)
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorLevelGating(t *testing.T) {
	buf := capture(t, 0)

	assert.Empty(t, E(2, "verbose failure"))
	assert.Empty(t, buf.String())

	assert.Equal(t, "plain", S(0, "plain"))
	assert.Contains(t, buf.String(), " - INFO - plain")
}

func TestPlainLine(t *testing.T) {
	buf := capture(t, 0)

	P("no %s here", "prefix")
	assert.Equal(t, "no prefix here\n", buf.String())
}

func TestEngineSink(t *testing.T) {
	buf := capture(t, 0)

	sink := EngineSink()
	sink.Debug("[debug] Command-line config: []")
	sink.Warning("WARNING: slow network")
	sink.Error("ERROR: unable to extract")

	out := buf.String()
	assert.Contains(t, out, " - DEBUG - [debug] Command-line config: [] source=yt-dlp")
	assert.Contains(t, out, " - WARN - WARNING: slow network source=yt-dlp")
	assert.Contains(t, out, " - ERROR - ERROR: unable to extract source=yt-dlp")
}
