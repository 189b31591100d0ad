// Package enums holds small enumerated types shared across packages.
package enums

// RunState is the orchestrator's progress through a single run.
type RunState int

const (
	RunNotStarted RunState = iota
	RunAttempting
	RunSucceeded
	RunFailed
)

func (s RunState) String() string {
	switch s {
	case RunNotStarted:
		return "not-started"
	case RunAttempting:
		return "attempting"
	case RunSucceeded:
		return "succeeded"
	case RunFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsFinished reports whether the run reached a terminal state.
func (s RunState) IsFinished() bool {
	return s == RunSucceeded || s == RunFailed
}

// CookieStatus is the outcome of looking up the cookie file.
type CookieStatus int

const (
	CookieUnset CookieStatus = iota
	CookieMissing
	CookieFound
)

func (c CookieStatus) String() string {
	switch c {
	case CookieUnset:
		return "unset"
	case CookieMissing:
		return "missing"
	case CookieFound:
		return "found"
	default:
		return "unknown"
	}
}
