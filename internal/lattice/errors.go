package lattice

import (
	"errors"
	"fmt"
)

// RangeError reports a parameter outside its documented domain.
//
// Cell coordinates never produce one: the torus wraps every (col, row) into
// range before dispatch. Only an invalid direction index can surface it.
type RangeError struct {
	// Code identifies the error category.
	Code RangeErrorCode

	// Param names the offending parameter.
	Param string

	// Value is the rejected value.
	Value int
}

// RangeErrorCode categorizes range errors.
type RangeErrorCode string

const (
	// ErrCodeDirectionRange indicates a direction index outside {0..5}.
	ErrCodeDirectionRange RangeErrorCode = "DIRECTION_RANGE"

	// ErrCodeSizeRange indicates a lattice size outside [MinSize, MaxSize].
	// Reset clamps instead of failing; the code exists for callers that
	// validate configuration up front.
	ErrCodeSizeRange RangeErrorCode = "SIZE_RANGE"
)

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s=%d out of range", e.Code, e.Param, e.Value)
}

// IsRangeError reports whether err is (or wraps) a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
