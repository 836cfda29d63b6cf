package post

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("post not found")
	ErrGatewayTimeout     = errors.New("storage gateway timed out")
	ErrGatewayUnavailable = errors.New("storage gateway unavailable")
)

// ValidationError reports malformed or incomplete post input. It is
// recoverable: callers re-prompt instead of failing the request chain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransitionError reports a lifecycle guard violation. The post is
// unchanged when one is returned.
type TransitionError struct {
	From   string
	Event  string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s post: %s", e.Event, e.From, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsInvalidTransition(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}
