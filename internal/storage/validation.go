package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrEmptySlice     = errors.New("slice cannot be empty")
	ErrInvalidImpulse = errors.New("invalid impulse")
	ErrInvalidStatus  = errors.New("invalid impulse status")
	ErrInvalidFeeling = errors.New("invalid feeling")
	ErrZeroTime       = errors.New("time cannot be zero")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTime ensures a time parameter is set.
func validateTime(t time.Time, paramName string) error {
	if t.IsZero() {
		return fmt.Errorf("%w: %s", ErrZeroTime, paramName)
	}
	return nil
}

// validateImpulses validates a slice of impulses before they hit SQL.
// This is the upstream schema validation the pattern engine assumes has
// already happened.
func validateImpulses(impulses []model.Impulse) error {
	if impulses == nil {
		return fmt.Errorf("%w: impulses", ErrNilParameter)
	}
	if len(impulses) == 0 {
		return fmt.Errorf("%w: impulses", ErrEmptySlice)
	}

	for i := range impulses {
		if err := impulses[i].Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %v", ErrInvalidImpulse, i, err)
		}
	}
	return nil
}
