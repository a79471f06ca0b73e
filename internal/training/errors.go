package training

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownWorkoutType is returned for a package code with no matching kind.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrDataLength is returned when a package carries the wrong number of values.
	ErrDataLength = errors.New("wrong number of package values")
	// ErrInvalidDuration is returned when the duration is not above zero.
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrInvalidHeight is returned when the walker's height is not above zero.
	ErrInvalidHeight = errors.New("height must be positive")
	// ErrInvalidValue covers negative, fractional or non-finite readings.
	ErrInvalidValue = errors.New("invalid package value")
)

func checkPositive(field string, v float64, sentinel error) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is %v", ErrInvalidValue, field, v)
	}
	if v <= 0 {
		return fmt.Errorf("%w: got %v", sentinel, v)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s is %v", ErrInvalidValue, field, v)
	}
	return nil
}

func checkCount(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s is %d", ErrInvalidValue, field, v)
	}
	return nil
}

// toCount converts a package value that must hold a whole, non-negative number.
func toCount(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidValue, field, v)
	}
	return int(v), nil
}
