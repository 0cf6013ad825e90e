// Package errors provides sentinel errors and error types for the mate search engine.
// Callers inspect failures with errors.Is() and errors.As(); the context types
// below keep the failing input or search position without hiding the sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrOutOfRange indicates a square whose file or rank lies outside 0-7.
	ErrOutOfRange = errors.New("square out of range")

	// ErrInvalidLabel indicates a malformed coordinate label such as "i9" or "A1".
	ErrInvalidLabel = errors.New("invalid square label")

	// ErrEmptyCell indicates an operation that needed a piece found none.
	ErrEmptyCell = errors.New("empty cell")

	// ErrNoKing indicates rule evaluation for a colour with no king on the board.
	ErrNoKing = errors.New("no king")

	// ErrInvalidFEN indicates a malformed FEN string or placement list.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNodeLimit indicates the search generated more boards than allowed.
	ErrNodeLimit = errors.New("node limit exceeded")
)

// SearchError wraps errors raised while expanding a search position. It
// records the ply being processed and the move sequence that led there.
type SearchError struct {
	Err      error  // The underlying error
	Ply      int    // 0-based ply at which the position was evaluated
	Sequence string // Move sequence key of the position (empty for the root)
}

// Error returns a formatted error message including the search context.
func (e *SearchError) Error() string {
	parts := []string{fmt.Sprintf("ply %d", e.Ply)}
	if e.Sequence != "" {
		parts = append(parts, fmt.Sprintf("after %q", e.Sequence))
	} else {
		parts = append(parts, "at root")
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *SearchError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to parse textual input such as a square
// label, a FEN string or a placement list.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column of the offending character (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
