// Package errors provides typed errors for clockface.
// Callers use errors.Is() and errors.As() to tell failure kinds apart.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// Style attribute errors
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidStyle = errors.New("invalid style attribute")

	// Input validation errors
	ErrInvalidTime = errors.New("invalid time of day")
	ErrInvalidSize = errors.New("invalid size")

	// Saved state errors
	ErrMissingState = errors.New("saved state missing key")
	ErrCorruptState = errors.New("saved state corrupted")

	// Output errors
	ErrTerminalOutput = errors.New("refusing to write binary output to a terminal")
)

// ConfigError reports a style attribute or config key that could not be
// resolved.
type ConfigError struct {
	Key   string // Config key, e.g. "style.background"
	Value string // Raw value as written
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("config %s=%q invalid", e.Key, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(key, value string, err error) *ConfigError {
	return &ConfigError{Key: key, Value: value, Err: err}
}

// StateError reports a saved widget state that could not be restored.
type StateError struct {
	Key string // Widget identity or state key
	Err error
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("state %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("state %s invalid", e.Key)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// NewStateError creates a new StateError.
func NewStateError(key string, err error) *StateError {
	return &StateError{Key: key, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsConfig checks if the error came from resolving style attributes.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce) || errors.Is(err, ErrInvalidColor) || errors.Is(err, ErrInvalidStyle)
}

// IsState checks if the error indicates unusable saved state.
func IsState(err error) bool {
	return errors.Is(err, ErrMissingState) || errors.Is(err, ErrCorruptState)
}
