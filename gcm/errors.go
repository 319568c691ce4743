// SPDX-License-Identifier: MIT
// Package: motifnet/gcm
//
// errors.go — structured generator errors.
//
// Error policy:
//   • Every failure is an *Error with a Kind discriminant.
//   • errors.Is(err, ErrConfiguration) / ErrInvariantViolated select on kind.
//   • Causes from collaborators (motif, core) stay reachable via errors.Is.

package gcm

import (
	"errors"
	"fmt"
)

// Kind classifies a generator failure.
type Kind int

const (
	// KindConfiguration: bad specs or JDS; fatal, raised before any work.
	KindConfiguration Kind = iota + 1
	// KindInvariant: the network refused an edge the generator had checked.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInvariant:
		return "invariant"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	// ErrConfiguration matches every KindConfiguration error.
	ErrConfiguration = errors.New("gcm: configuration error")
	// ErrInvariantViolated matches every KindInvariant error.
	ErrInvariantViolated = errors.New("gcm: invariant violated")
)

// Error is the structured error returned by this package.
type Error struct {
	Kind   Kind
	Op     string // "NewGenerator", "Generate", ...
	Detail string
	Err    error // optional cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gcm: %s: %s error: %s: %v", e.Op, e.Kind, e.Detail, e.Err)
	}

	return fmt.Sprintf("gcm: %s: %s error: %s", e.Op, e.Kind, e.Detail)
}

// Is matches the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrInvariantViolated:
		return e.Kind == KindInvariant
	}

	return false
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error { return e.Err }

func configErr(op string, cause error, format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Detail: fmt.Sprintf(format, args...), Err: cause}
}

func invariantErr(op string, cause error, format string, args ...any) *Error {
	return &Error{Kind: KindInvariant, Op: op, Detail: fmt.Sprintf(format, args...), Err: cause}
}
