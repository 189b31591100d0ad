// Package process runs the single cookie-aware video download.
package process

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"vidfetch/internal/command/execute"
	"vidfetch/internal/domain/consts"
	"vidfetch/internal/domain/enums"
	"vidfetch/internal/models"
	"vidfetch/internal/utils/browser"
	"vidfetch/internal/utils/fs"
	"vidfetch/internal/utils/logging"
)

// ErrDownloadFailed wraps every failure reported by the download engine.
var ErrDownloadFailed = errors.New("download failed")

// Orchestrator picks download options from the cookie environment and runs the engine once.
type Orchestrator struct {
	settings models.Settings
	engine   models.Downloader
	lookup   browser.LookupFunc
	sink     models.EngineLogger

	mu    sync.Mutex
	state enums.RunState
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithLookup replaces os.LookupEnv as the environment source.
func WithLookup(fn browser.LookupFunc) Option {
	return func(o *Orchestrator) {
		o.lookup = fn
	}
}

// WithEngineLogger replaces the engine log sink used in the cookie branch.
func WithEngineLogger(l models.EngineLogger) Option {
	return func(o *Orchestrator) {
		o.sink = l
	}
}

// NewOrchestrator returns an orchestrator for s that downloads through engine.
func NewOrchestrator(s models.Settings, engine models.Downloader, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		settings: s,
		engine:   engine,
		sink:     logging.EngineSink(),
		state:    enums.RunNotStarted,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current run state.
func (o *Orchestrator) State() enums.RunState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s enums.RunState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Options resolves the cookie file and builds the engine options for this run.
func (o *Orchestrator) Options() *models.DownloadOptions {
	envVar := o.settings.CookieEnvVar
	path, status := browser.LocateCookieFile(o.lookup, envVar)

	switch status {
	case enums.CookieUnset:
		logging.E(0, consts.MsgEnvVarMissing, envVar)
		logging.I(consts.MsgWithoutCookies)
		return o.withoutCookies()

	case enums.CookieMissing:
		logging.E(0, consts.MsgCookieFileMissing, path)
		logging.I(consts.MsgWithoutCookies)
		return o.withoutCookies()

	default:
		logging.I(consts.MsgCookieFileFound, path)
		o.inspectCookies(path)
		return &models.DownloadOptions{
			Format:         consts.FormatWithCookies,
			OutputTemplate: o.settings.OutputTemplate,
			CookieFile:     path,
			NoPlaylist:     true,
			Verbose:        true,
			Quiet:          false,
			Logger:         o.sink,
		}
	}
}

func (o *Orchestrator) withoutCookies() *models.DownloadOptions {
	return &models.DownloadOptions{
		Format:         consts.FormatWithoutCookies,
		OutputTemplate: o.settings.OutputTemplate,
	}
}

// inspectCookies logs how many usable cookies the file holds for the target site.
// It never changes which options are used.
func (o *Orchestrator) inspectCookies(path string) {
	n, err := browser.InspectCookieFile(path, o.settings.VideoURL)
	switch {
	case err != nil:
		logging.W("Could not inspect cookie file %q: %v", path, err)
	case n == 0:
		logging.W("Cookie file %q holds no valid cookies for %s", path, o.settings.VideoURL)
	default:
		logging.D(1, "Cookie file %q holds %d valid cookies for %s", path, n, o.settings.VideoURL)
	}
}

// Run performs the download. Any engine failure is returned wrapped in ErrDownloadFailed.
func (o *Orchestrator) Run(ctx context.Context) error {
	if o.engine == nil {
		return errors.New("no download engine configured")
	}
	switch st := o.State(); {
	case st.IsFinished():
		return fmt.Errorf("orchestrator already ran (state %s)", st)
	case st == enums.RunAttempting:
		return errors.New("orchestrator download already in progress")
	}

	opts := o.Options()
	logging.D(1, "Engine options: %v", opts.Map())

	logging.I(consts.MsgAttempting, o.settings.VideoURL)
	o.setState(enums.RunAttempting)

	if err := o.engine.Download(ctx, []string{o.settings.VideoURL}, opts); err != nil {
		o.setState(enums.RunFailed)
		logging.E(0, consts.MsgDownloadFailed)
		logging.E(0, "%v", err)
		logging.P("%s", describe(err))
		return fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	o.setState(enums.RunSucceeded)
	logging.S(0, consts.MsgDownloadComplete)
	logging.I(consts.MsgCheckOutput, o.settings.OutputTemplate)
	o.reportOutputs()
	return nil
}

// reportOutputs logs the files the engine left at the output template.
func (o *Orchestrator) reportOutputs() {
	files, err := fs.FindOutputs(o.settings.OutputTemplate)
	if err != nil {
		logging.W("Could not check output files: %v", err)
		return
	}
	if len(files) == 0 {
		logging.W("No finished file matches %s", o.settings.OutputTemplate)
		return
	}
	for _, f := range files {
		logging.I("Saved %s (%d bytes)", f.Path, f.Size)
	}
}

// describe renders err with engine detail when available.
func describe(err error) string {
	var execErr *execute.ExecError
	if errors.As(err, &execErr) {
		return execErr.Detail()
	}
	return fmt.Sprintf("%+v", err)
}

// ExitCode maps a run result to the process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
