// Package logging provides the program's leveled logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const TimeFormat = "2006-01-02 15:04:05"

var (
	Level int // Debug verbosity, 0 prints errors, successes and info only
	mu    sync.Mutex
	out   io.Writer = os.Stdout
	zl              = newLogger(out)
)

// Setup points the logger at out and sets the debug verbosity.
func Setup(w io.Writer, level int) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stdout
	}
	out = w
	zl = newLogger(w)
	Level = level
}

// newLogger renders lines as "<time> - <LEVEL> - <message> <fields>".
func newLogger(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(w),
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i any) string {
			lvl, _ := i.(string)
			return "- " + strings.ToUpper(lvl) + " -"
		},
	}
	return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// E logs an error tagged with the calling function, file and line.
func E(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	ev := zl.Error()
	withCaller(ev).Msg(msg)
	return msg
}

// S logs a success message.
func S(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	zl.Info().Msg(msg)
	return msg
}

// D logs a debug message tagged with the calling function, file and line.
func D(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	withCaller(zl.Debug()).Msg(msg)
	return msg
}

// W logs a warning.
func W(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	zl.Warn().Msg(msg)
	return msg
}

// I logs an info message.
func I(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	zl.Info().Msg(msg)
	return msg
}

// P prints a plain line with no timestamp or level.
func P(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	fmt.Fprintln(out, msg)
	return msg
}

// withCaller adds the caller two frames up (the E/D caller).
func withCaller(ev *zerolog.Event) *zerolog.Event {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return ev
	}
	return ev.
		Str("func", filepath.Base(runtime.FuncForPC(pc).Name())).
		Str("file", filepath.Base(file)).
		Int("line", line)
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
