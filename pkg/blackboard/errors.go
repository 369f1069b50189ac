package blackboard

import "errors"

// Typed errors for invariant violations. Operations return these instead of
// panicking; the runner treats them as fatal to the cycle, not the session.
var (
	ErrEmptyClaim         = errors.New("claim text is empty")
	ErrUnknownFrontier    = errors.New("frontier idea not found")
	ErrFrontierActivated  = errors.New("frontier idea already activated")
	ErrNoFrontiers        = errors.New("no frontiers available")
	ErrClaimAlive         = errors.New("current claim is still alive")
	ErrNegativeCostLimit  = errors.New("cost limit must be positive")
	ErrSupportOutOfRange  = errors.New("support strength outside [0, 1]")
	ErrSessionIDImmutable = errors.New("session id is immutable")
)
