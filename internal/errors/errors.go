// Package errors provides sentinel errors and error types for the chess rules engine.
// Rule rejections form a closed set that all unwrap to ErrIllegalMove, so callers
// can tell a refused move apart from malformed notation with errors.Is().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalMove is the parent of every rule rejection below.
var ErrIllegalMove = errors.New("illegal move")

// ruleError is a rejection that also matches ErrIllegalMove.
type ruleError struct {
	msg string
}

func (e *ruleError) Error() string { return e.msg }

func (e *ruleError) Unwrap() error { return ErrIllegalMove }

func rule(msg string) error {
	return &ruleError{msg: msg}
}

// Move rejections, reported in the order the engine checks them.
var (
	// ErrNoPieceAtMoveSource indicates the source square is empty.
	ErrNoPieceAtMoveSource = rule("no piece at move source")

	// ErrEnemyPieceAtMoveSource indicates the source piece belongs to the side not on move.
	ErrEnemyPieceAtMoveSource = rule("enemy piece at move source")

	// ErrInvalidMovePattern indicates the piece cannot move along that vector.
	ErrInvalidMovePattern = rule("invalid move pattern")

	// ErrMoveCollisionOccurs indicates a piece stands between source and destination.
	ErrMoveCollisionOccurs = rule("move collision occurs")

	// ErrCannotCaptureFriendly indicates the destination holds a piece of the mover's colour.
	ErrCannotCaptureFriendly = rule("cannot capture friendly piece")

	// ErrCannotSelfCheck indicates the move would leave the mover's king attacked.
	ErrCannotSelfCheck = rule("cannot move into check")
)

// Notation and input errors.
var (
	// ErrInvalidSquare indicates malformed square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrSquareOutOfRange indicates coordinates outside the 8x8 board.
	ErrSquareOutOfRange = errors.New("square out of range")

	// ErrInvalidMoveText indicates move text that is not two squares.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrGameNotFound indicates an unknown journal game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates contradictory or incomplete options.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the ply and move text that caused it.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number (0 if not applicable)
	MoveText string // The move as entered (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation error with the offending input.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // 1-based column of the problem (0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
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

// IsRuleViolation reports whether err is one of the move rejections.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrIllegalMove)
}
