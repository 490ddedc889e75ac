// Package errors provides domain-specific error types for changebase.
//
// These types carry structured context (input, base, offending digit)
// so the CLI can report exactly what went wrong, and callers can match
// on them with Is/As instead of comparing strings.
package errors

import (
	"errors"
	"fmt"

	"changebase/internal/base"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrEmptyInput           = errors.New("no digits to convert")
	ErrConflictingBaseFlags = errors.New("conflicting base flags")
	ErrUnknownBase          = errors.New("unknown base")
)

// ── Structured error types ───────────────────────────────────────────

// InvalidDigitError reports a character that is not a legal digit for
// the base it is parsed under.  Pos is the byte offset of Digit within
// Input, or -1 when Input is empty.
type InvalidDigitError struct {
	Input string
	Base  base.Base
	Digit rune
	Pos   int
}

func (e *InvalidDigitError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: no digits after prefix (%s)", e.Base.Label(), Hint(e.Base))
	}
	return fmt.Sprintf("%s: invalid digit %q at position %d in %q (%s)",
		e.Base.Label(), e.Digit, e.Pos, e.Input, Hint(e.Base))
}

// Is lets an empty-input InvalidDigitError match ErrEmptyInput.
func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrEmptyInput && e.Pos < 0
}

// ConversionError wraps a parse failure with the raw value the user
// supplied, before any prefix was stripped.
type ConversionError struct {
	Raw  string
	Base base.Base
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Raw, e.Base.Label(), e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ConfigError represents an invalid or conflicting flag value.
type ConfigError struct {
	Field   string      // flag name, or env variable name when Env is set
	Env     bool        // value came from the environment
	Value   interface{} // the invalid value (nil if not applicable)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // sentinel, if any
}

func (e *ConfigError) Error() string {
	msg := "config: --" + e.Field
	if e.Env {
		msg = "config: " + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UsageError marks a command-line mistake (unknown flag, missing or
// extra value) that is not tied to a single config field.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// InvalidDigit creates an InvalidDigitError for the rune at pos.
func InvalidDigit(input string, b base.Base, digit rune, pos int) *InvalidDigitError {
	return &InvalidDigitError{Input: input, Base: b, Digit: digit, Pos: pos}
}

// EmptyInput creates the InvalidDigitError used for an empty digit string.
func EmptyInput(b base.Base) *InvalidDigitError {
	return &InvalidDigitError{Base: b, Pos: -1}
}

// Usage wraps err as a UsageError.
func Usage(err error) *UsageError { return &UsageError{Err: err} }

// WrapConversion creates a ConversionError.
func WrapConversion(raw string, b base.Base, err error) *ConversionError {
	return &ConversionError{Raw: raw, Base: b, Err: err}
}

// Hint describes the legal digits of b.
func Hint(b base.Base) string {
	switch b {
	case base.Binary:
		return "only include the digits 0 or 1"
	case base.Octal:
		return "only enter the digits 0-7"
	case base.Decimal:
		return "only enter the digits 0-9"
	case base.Hexadecimal:
		return "only enter the digits 0-9 and a-f"
	default:
		return "unsupported base"
	}
}

// ── Classification helpers ───────────────────────────────────────────

// IsUsage reports whether err stems from the command line itself
// rather than from the value being converted.
func IsUsage(err error) bool {
	var ce *ConfigError
	var ue *UsageError
	return errors.As(err, &ce) || errors.As(err, &ue)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use changebase/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }
