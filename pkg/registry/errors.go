package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Lifecycle errors. Each maps to one API error code; none of them changes
// session state.
var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrNotRunning            = errors.New("session is not running")
	ErrAlreadyPaused         = errors.New("session is already paused")
	ErrCannotPauseStopped    = errors.New("cannot pause a stopped session")
	ErrCannotPauseCompleted  = errors.New("cannot pause a completed session")
	ErrNotPaused             = errors.New("session is not paused")
	ErrCannotResumeStopped   = errors.New("cannot resume a stopped session")
	ErrCannotResumeCompleted = errors.New("cannot resume a completed session")
	ErrAlreadyCompleted      = errors.New("session already reached its cycle limit")
	ErrAlreadyStopped        = errors.New("session is already stopped")
)

// ValidationError carries every config violation found at session
// creation.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid session config: %s", strings.Join(e.Violations, "; "))
}
