package vidar

import (
	"errors"
	"fmt"
)

// Sentinel errors for the vidar package.
var (
	// ErrInvalidTime is returned when a keyframe resolution is attempted
	// with an undefined (NaN) time.
	ErrInvalidTime = errors.New("vidar: keyframe resolution requires a defined numeric time")
)

// BoundSide identifies which side of a keyframe bracket is missing.
type BoundSide int

const (
	// LowerBound is the largest keyframe time at or below the requested time.
	LowerBound BoundSide = iota
	// UpperBound is the smallest keyframe time at or above the requested time.
	UpperBound
)

func (s BoundSide) String() string {
	if s == LowerBound {
		return "lower"
	}
	return "upper"
}

// MissingBoundError is returned when no keyframe exists on the required
// side of the requested time. Resolving against an empty keyframe set
// reports a missing lower bound.
type MissingBoundError struct {
	Side BoundSide
	Time float64
}

func (e *MissingBoundError) Error() string {
	return fmt.Sprintf("vidar: no %s-bound keyframe at time %v", e.Side, e.Time)
}

// TypeMismatchError is returned when two keyframe values, or two
// interpolation operands, belong to different runtime categories
// (number, structured, other).
type TypeMismatchError struct {
	A, B any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("vidar: cannot interpolate %T with %T", e.A, e.B)
}

// StructuralMismatchError is returned when two structured interpolation
// operands have incompatible shapes, for example a map and a slice, or
// two distinct struct types.
type StructuralMismatchError struct {
	A, B any
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("vidar: structured operands have incompatible shapes: %T vs %T", e.A, e.B)
}

// InvalidOptionError is returned by ApplyOptions when a caller override
// names a key absent from the variant's merged default set. No overrides
// are applied when any key is invalid.
type InvalidOptionError struct {
	Key string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("vidar: invalid option %q", e.Key)
}

// InvalidFormatError is returned by ParseFont when the input does not
// split into exactly two whitespace-separated tokens, or the first token
// carries no numeric size.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("vidar: malformed font declaration %q", e.Input)
}
