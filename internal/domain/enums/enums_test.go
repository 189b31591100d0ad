package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunState(t *testing.T) {
	tests := []struct {
		state    RunState
		name     string
		finished bool
	}{
		{RunNotStarted, "not-started", false},
		{RunAttempting, "attempting", false},
		{RunSucceeded, "succeeded", true},
		{RunFailed, "failed", true},
		{RunState(42), "unknown", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.state.String())
		assert.Equal(t, tt.finished, tt.state.IsFinished(), tt.name)
	}
}

func TestCookieStatus(t *testing.T) {
	assert.Equal(t, "unset", CookieUnset.String())
	assert.Equal(t, "missing", CookieMissing.String())
	assert.Equal(t, "found", CookieFound.String())
}
