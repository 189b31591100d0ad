package logging

import (
	"vidfetch/internal/domain/command"
	"vidfetch/internal/models"
)

type engineSink struct{}

// EngineSink returns a logger the download engine writes its output through.
//
// Engine lines are not gated by Level; the engine's own verbosity flags decide what it emits.
func EngineSink() models.EngineLogger {
	return engineSink{}
}

func (engineSink) Debug(msg string) {
	mu.Lock()
	defer mu.Unlock()
	zl.Debug().Str("source", command.YTDLP).Msg(msg)
}

func (engineSink) Warning(msg string) {
	mu.Lock()
	defer mu.Unlock()
	zl.Warn().Str("source", command.YTDLP).Msg(msg)
}

func (engineSink) Error(msg string) {
	mu.Lock()
	defer mu.Unlock()
	zl.Error().Str("source", command.YTDLP).Msg(msg)
}
