package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when parameters are rejected before any computation starts.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrDomain is returned when the recurrence is undefined for the given parameters.
var ErrDomain = errors.New("undefined recurrence")

// ErrNumericOverflow is returned when a float64 intermediate leaves the finite range.
var ErrNumericOverflow = errors.New("numeric precision exhausted")

// ErrSolutionNotFound is returned when a solution key cannot be found in the store.
var ErrSolutionNotFound = errors.New("solution not found")

// ErrRecursionLimit is returned by the recursive solver when the call depth exceeds its bound.
var ErrRecursionLimit = errors.New("recursion limit exceeded")

// ConfigError names the parameter that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// DomainError names the (n, k) pair whose value is undefined over the reals.
type DomainError struct {
	N      int
	K      int
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("undefined recurrence at (n=%d, k=%d): %s", e.N, e.K, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// OverflowError reports a non-finite value produced while evaluating (n, k).
type OverflowError struct {
	N     int
	K     int
	Value float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("numeric precision exhausted at (n=%d, k=%d): got %v", e.N, e.K, e.Value)
}

func (e *OverflowError) Unwrap() error { return ErrNumericOverflow }

// ErrorKind classifies err for transports that need a stable string (HTTP, MCP).
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidConfiguration):
		return "invalid_configuration"
	case errors.Is(err, ErrDomain):
		return "domain_error"
	case errors.Is(err, ErrNumericOverflow):
		return "numeric_overflow"
	case errors.Is(err, ErrRecursionLimit):
		return "recursion_limit"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
