// Package validate collects field-level validation problems and logs each
// checked field path.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrRequired marks a missing required field.
var ErrRequired = errors.New("is required")

// FieldError is a validation problem attached to a field path.
type FieldError struct {
	Path  string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors aggregates every problem found in one pass.
type ValidationErrors struct {
	Subject string
	errors  []error
}

// Add records err; nil is ignored.
func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

// HasErrors reports whether any problem was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the recorded problems in insertion order.
func (v *ValidationErrors) Errors() []error {
	return append([]error(nil), v.errors...)
}

// Unwrap exposes the recorded problems to errors.Is and errors.As.
func (v *ValidationErrors) Unwrap() []error {
	return v.errors
}

// Err returns v when problems were recorded, nil otherwise.
func (v *ValidationErrors) Err() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

func (v *ValidationErrors) Error() string {
	subject := v.Subject
	if subject == "" {
		subject = "configuration"
	}
	var sb strings.Builder
	sb.WriteString(subject)
	sb.WriteString(" validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Checker validates fields and logs the outcome of each one.
type Checker struct {
	Logger zerolog.Logger
	Errors ValidationErrors
}

// NewChecker returns a checker whose aggregate error names subject.
func NewChecker(subject string, logger zerolog.Logger) *Checker {
	return &Checker{Logger: logger, Errors: ValidationErrors{Subject: subject}}
}

// OK logs an accepted value.
func (c *Checker) OK(path string, value any) {
	c.Logger.Debug().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

// Fail records and logs a rejected value.
func (c *Checker) Fail(path string, value any, err error) {
	c.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
	c.Errors.Add(&FieldError{Path: path, Value: value, Err: err})
}

// Check records err against path when it is non-nil.
func (c *Checker) Check(path string, value any, err error) bool {
	if err != nil {
		c.Fail(path, value, err)
		return false
	}
	c.OK(path, value)
	return true
}

// RequireString fails when value is blank.
func (c *Checker) RequireString(path, value string) bool {
	if strings.TrimSpace(value) == "" {
		c.Fail(path, value, ErrRequired)
		return false
	}
	c.OK(path, value)
	return true
}

// RequireOneOf fails when value is not among allowed.
func RequireOneOf[T comparable](c *Checker, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			c.OK(path, value)
			return true
		}
	}
	c.Fail(path, value, fmt.Errorf("must be one of %v", allowed))
	return false
}

// Err returns the aggregate error, or nil.
func (c *Checker) Err() error {
	return c.Errors.Err()
}
