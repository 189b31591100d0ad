// Package execute runs the yt-dlp download engine.
package execute

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"vidfetch/internal/command/builder"
	"vidfetch/internal/domain/command"
	"vidfetch/internal/domain/consts"
	"vidfetch/internal/models"
	"vidfetch/internal/utils/logging"
)

// YTDLP downloads through the yt-dlp executable.
type YTDLP struct {
	Path string // Binary name or path, defaults to "yt-dlp"

	// Used when options carry no logger. Nil means os.Stdout / os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewYTDLP returns an engine using the yt-dlp binary at path.
func NewYTDLP(path string) *YTDLP {
	return &YTDLP{Path: path}
}

// Download runs yt-dlp once for urls and blocks until it exits.
func (y *YTDLP) Download(ctx context.Context, urls []string, opts *models.DownloadOptions) error {
	path := y.Path
	if path == "" {
		path = command.YTDLP
	}
	bin, err := exec.LookPath(path)
	if err != nil {
		return fmt.Errorf("yt-dlp command not found: %w", err)
	}

	args, err := builder.NewVideoDLCommandBuilder(opts).VideoFetchArgs(urls)
	if err != nil {
		return fmt.Errorf("failed to build yt-dlp arguments: %w", err)
	}
	logging.D(1, "Built argument list: %v", args)

	cmd := exec.CommandContext(ctx, bin, args...)
	killGroupOnCancel(cmd)
	cmd.WaitDelay = consts.KillWaitDelay
	tail := newTailBuffer(consts.StderrTailLines)

	logging.I("Executing download command: %s", cmd.String())
	if opts.Logger != nil {
		err = runLogged(ctx, cmd, opts.Logger, tail)
	} else {
		cmd.Stdout = orDefault(y.Stdout, os.Stdout)
		cmd.Stderr = io.MultiWriter(orDefault(y.Stderr, os.Stderr), tail)
		err = cmd.Run()
	}

	if err != nil {
		return newExecError(bin, args, tail.Lines(), err)
	}
	return nil
}

// runLogged streams stdout and stderr line by line into l.
func runLogged(ctx context.Context, cmd *exec.Cmd, l models.EngineLogger, tail *tailBuffer) error {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start download: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanLines(stdout, l, nil)
	}()
	go func() {
		defer wg.Done()
		scanLines(stderr, l, tail)
	}()

	// Pipes must be drained before Wait closes them. Once cancelled, a descendant
	// that escaped the process group gets WaitDelay before the pipes are closed under it.
	drained := make(chan struct{})
	go func() {
		select {
		case <-drained:
		case <-ctx.Done():
			select {
			case <-drained:
			case <-time.After(cmd.WaitDelay):
				stdout.Close()
				stderr.Close()
			}
		}
	}()

	wg.Wait()
	close(drained)
	return cmd.Wait()
}

func scanLines(r io.Reader, l models.EngineLogger, tail *tailBuffer) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if tail != nil {
			tail.add(line)
		}
		routeLine(l, line)
	}
	if err := scanner.Err(); err != nil {
		logging.E(0, "Scanner error: %v", err)
	}
}

// routeLine sends a line to the logger method matching its yt-dlp prefix.
func routeLine(l models.EngineLogger, line string) {
	switch {
	case strings.HasPrefix(line, command.PrefixDebug):
		l.Debug(line)
	case strings.HasPrefix(line, command.PrefixWarning):
		l.Warning(line)
	case strings.HasPrefix(line, command.PrefixError):
		l.Error(line)
	default:
		// yt-dlp hands screen output to a logger's debug method
		l.Debug(line)
	}
}

func orDefault(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}

// ExecError describes a failed yt-dlp run.
type ExecError struct {
	Path     string
	Args     []string
	ExitCode int // -1 when the process never exited normally
	Stderr   []string
	Err      error
}

func newExecError(path string, args, stderr []string, err error) *ExecError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ExecError{
		Path:     path,
		Args:     args,
		ExitCode: code,
		Stderr:   stderr,
		Err:      err,
	}
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("yt-dlp command failed (exit code %d): %v", e.ExitCode, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Detail renders the command, exit code and captured stderr tail.
func (e *ExecError) Detail() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command: %s %s\n", e.Path, strings.Join(e.Args, " "))
	fmt.Fprintf(&b, "exit code: %d\n", e.ExitCode)
	fmt.Fprintf(&b, "error: %v", e.Err)
	if len(e.Stderr) > 0 {
		b.WriteString("\nstderr (last lines):")
		for _, line := range e.Stderr {
			b.WriteString("\n  ")
			b.WriteString(line)
		}
	}
	return b.String()
}
