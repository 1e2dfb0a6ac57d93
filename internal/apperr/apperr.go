package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error classes. Callers branch with errors.Is; the constructors
// below wrap a formatted message around the class so context survives.
var (
	ErrValidation   = errors.New("validation error")
	ErrNetwork      = errors.New("network error")
	ErrPersistence  = errors.New("persistence error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func Network(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNetwork)...)
}

func Persistence(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrPersistence)...)
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Unauthorized(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnauthorized)...)
}
