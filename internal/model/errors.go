package model

import "errors"

var (
	// ErrInvalidInstance is wrapped by every validator failure: non-positive
	// or non-numeric sizes, sizes exceeding the bin, non-positive capacities
	// or machine counts, malformed matrices.
	ErrInvalidInstance = errors.New("invalid instance")

	// ErrInvalidSetting is returned for unknown algorithm, order or score
	// names and for settings that fail struct validation.
	ErrInvalidSetting = errors.New("invalid setting")
)
