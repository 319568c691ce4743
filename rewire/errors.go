// SPDX-License-Identifier: MIT
// Package: motifnet/rewire
//
// errors.go — structured rewiring errors.
//
// Error policy:
//   • Every failure is an *Error with a Kind discriminant.
//   • errors.Is against ErrConfiguration / ErrSearchExhausted /
//     ErrInvariantViolated selects on kind; causes stay reachable.
//   • Recoverable rejections never surface as errors; they are Outcomes.

package rewire

import (
	"errors"
	"fmt"
)

// Kind classifies a rewiring failure.
type Kind int

const (
	// KindConfiguration: unusable network, target or limits; raised by NewEngine.
	KindConfiguration Kind = iota + 1
	// KindSearchExhausted: the chain stalled; no swap was accepted within the stall limit.
	KindSearchExhausted
	// KindInvariant: internal consistency broken (edge count, zero denominator).
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindSearchExhausted:
		return "search exhausted"
	case KindInvariant:
		return "invariant"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	ErrConfiguration     = errors.New("rewire: configuration error")
	ErrSearchExhausted   = errors.New("rewire: search exhausted")
	ErrInvariantViolated = errors.New("rewire: invariant violated")
)

// Error is the structured error returned by this package.
type Error struct {
	Kind   Kind
	Op     string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rewire: %s: %s error: %s: %v", e.Op, e.Kind, e.Detail, e.Err)
	}

	return fmt.Sprintf("rewire: %s: %s error: %s", e.Op, e.Kind, e.Detail)
}

// Is matches the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrSearchExhausted:
		return e.Kind == KindSearchExhausted
	case ErrInvariantViolated:
		return e.Kind == KindInvariant
	}

	return false
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, op string, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...), Err: cause}
}
