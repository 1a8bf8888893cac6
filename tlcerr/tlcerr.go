/*
NAME
  tlcerr.go

AUTHORS
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tlcerr defines the tagged error kinds used across the TLC engine
// (spec §7). A query's failure is part of its cached value: same inputs,
// same error, no automatic retry. NumericDivergence is deliberately absent
// here because it never crosses the solver boundary as an error -- it is
// represented as a NaN value instead.
package tlcerr

import "fmt"

// Kind tags the category of a core engine failure.
type Kind int

const (
	// ConfigUnset indicates a required input is absent.
	ConfigUnset Kind = iota
	// BoundsViolation indicates a user-supplied index/area/row lies outside data.
	BoundsViolation
	// IoFailure indicates a file open/read/parse failure.
	IoFailure
	// DecodeFailure indicates a packet could not be decoded.
	DecodeFailure
	// Cancelled indicates a newer input superseded this computation.
	Cancelled
	// InvariantViolation indicates an internal consistency check failed
	// (packet count mismatch, row-length mismatch, etc).
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case ConfigUnset:
		return "ConfigUnset"
	case BoundsViolation:
		return "BoundsViolation"
	case IoFailure:
		return "IoFailure"
	case DecodeFailure:
		return "DecodeFailure"
	case Cancelled:
		return "Cancelled"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}

// Error is a tagged error: a Kind plus a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// New constructs a tagged error.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a tagged *Error of the given kind.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
