package service

import (
	"errors"
	"fmt"

	"Motiv/internal/backend"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid phone number, code or password")
	ErrUnauthorized       = errors.New("session expired")
	ErrUnavailable        = errors.New("goals backend unavailable")
	ErrRulesUnavailable   = errors.New("goal rules unavailable")
	ErrNotSupervisor      = errors.New("only the supervisor can judge this goal")
	ErrAlreadyDecided     = errors.New("goal already judged")
	ErrWindowNotOpen      = errors.New("supervision window not open yet")
	ErrWindowClosed       = errors.New("supervision window closed")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// translate maps transport failures of the backend client onto service
// errors. Envelope errors pass through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, backend.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
