package ledbadge

import (
	"errors"
	"fmt"
)

// Validation failures, all surfaced before any device interaction.
var (
	ErrEmptyMessage    = errors.New("message contains no tokens")
	ErrNoMessages      = errors.New("at least one message is required")
	ErrTooManyMessages = fmt.Errorf("at most %d messages are supported", MaxMessages)
	ErrPayloadTooLarge = errors.New("bitmap payload exceeds device memory")
)

// InvalidParameterError reports a display parameter outside its allowed set.
type InvalidParameterError struct {
	Field string
	Value int
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
}

// InvalidImageError reports an image token whose target could not be
// loaded as a badge bitmap.
type InvalidImageError struct {
	Path string
	Err  error
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image %q: %v", e.Path, e.Err)
}

func (e *InvalidImageError) Unwrap() error { return e.Err }

// TransportError reports a USB delivery failure. The library never
// retries on its own; retry policy belongs to the caller.
type TransportError struct {
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport: " + e.Reason
	}
	return fmt.Sprintf("transport: %s: %v", e.Reason, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
