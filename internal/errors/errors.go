package errors

import (
	"errors"
	"fmt"
)

// Common error types for the OAuth2 client
var (
	// Authorization flow errors
	ErrMissingState  = errors.New("missing state parameter")
	ErrStateMismatch = errors.New("state mismatch")
	ErrFlowNotFound  = errors.New("flow not found")
	ErrFlowExpired   = errors.New("flow expired")

	// Provider errors
	ErrProviderNotFound = errors.New("provider not found")
	ErrInvalidProvider  = errors.New("invalid provider")
	ErrInvalidScope     = errors.New("invalid scope")

	// Token errors
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExchangeFailed = errors.New("token exchange failed")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
