// Package coreerr defines the error taxonomy shared by every automaton
// package in this module. It never logs and never exits the process; every
// failure is returned to the caller as one of the kinds below, wrapped with
// %w so callers can use errors.Is/errors.As.
package coreerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap these with fmt.Errorf("...: %w", KindX) to attach
// context while keeping errors.Is(err, KindX) working.
var (
	// ErrInvalidState is returned when a StateID does not exist in the
	// automaton it was looked up against.
	ErrInvalidState = errors.New("invalid state id")

	// ErrInvariant is returned when an operation would violate an automaton
	// invariant: a conflicting deterministic transition, a second start
	// state, use of an already-consumed automaton, or finalizing without a
	// start state.
	ErrInvariant = errors.New("automaton invariant violated")

	// ErrIterationLimit is returned by PDA search entry points that report
	// errors (trace-returning entry points) when the BFS budget is
	// exhausted before an accepting configuration is found.
	ErrIterationLimit = errors.New("iteration limit exceeded")

	// ErrDomain is returned for out-of-domain arguments: negative edit
	// distance, empty pattern where forbidden, and similar caller mistakes.
	ErrDomain = errors.New("domain error")
)

// ParseError carries the position and message for a regex or grammar syntax
// error, matching spec.md's ParseError kind.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

// NewParseError builds a ParseError at the given byte offset.
func NewParseError(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// InvalidStateError names the offending StateID.
type InvalidStateError struct {
	ID interface{}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state id: %v", e.ID)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// InvariantError carries a free-form message about which invariant broke.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s", e.Msg)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// NewInvariantError builds an InvariantError.
func NewInvariantError(format string, args ...interface{}) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError carries a free-form message about the invalid argument.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s", e.Msg)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// NewDomainError builds a DomainError.
func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// IterationLimitError reports the budget that was exhausted.
type IterationLimitError struct {
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("iteration limit of %d exceeded without finding an accepting path", e.Limit)
}

func (e *IterationLimitError) Unwrap() error { return ErrIterationLimit }
