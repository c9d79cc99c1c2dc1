package gps

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to classify construction failures.
var (
	// ErrParse reports an input that is not an integer, a finite float, or a
	// well-formed decimal string.
	ErrParse = errors.New("gps: invalid time value")

	// ErrRange reports a value whose total nanosecond count does not fit int64.
	ErrRange = errors.New("gps: time out of range")
)

var (
	errUnsupportedType = errors.New("unsupported type")
	errNotFinite       = errors.New("not a finite number")
	errArity           = errors.New("expected seconds and optional nanoseconds")
)

// ParseError describes an input that could not be turned into a Time.
type ParseError struct {
	Input string // offending input, or its Go type for unsupported values
	Err   error  // underlying cause (optional)
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gps: cannot parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("gps: cannot parse %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match so callers need not know the concrete type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// RangeError describes an exact value outside the representable range.
type RangeError struct {
	Value string // exact offending value, with units
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gps: %s out of range [%d, %d] ns", e.Value, int64(minNs), int64(maxNs))
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
