package game

import (
	"errors"
	"fmt"
)

// ErrNotLevelComplete is returned by Session.NextLevel outside StateLevelComplete.
var ErrNotLevelComplete = errors.New("level is not complete")

// InvariantError reports a programming or configuration mistake detected at
// initialization (degenerate geometry, a target index outside the hole set).
// These are never clamped silently.
type InvariantError struct {
	What   string
	Detail string
	cause  error
}

func (e *InvariantError) Error() string {
	if e == nil {
		return "invariant violation"
	}
	if e.Detail == "" {
		return fmt.Sprintf("invariant violation: %s", e.What)
	}
	return fmt.Sprintf("invariant violation: %s: %s", e.What, e.Detail)
}

func (e *InvariantError) Unwrap() error { return e.cause }

func IsInvariantViolation(err error) bool {
	var e *InvariantError
	return errors.As(err, &e)
}

func invariantf(what, format string, args ...any) error {
	return &InvariantError{What: what, Detail: fmt.Sprintf(format, args...)}
}
