package naca

import "errors"

var (
	// ErrInvalidDesignation is returned when a designation is not exactly
	// 4 ASCII digits.
	ErrInvalidDesignation = errors.New("naca: designation must be exactly 4 digits")

	// ErrInvalidChordLength is returned for a non-positive chord length.
	ErrInvalidChordLength = errors.New("naca: chord length must be positive")

	// ErrInsufficientResolution is returned when the requested point count
	// is below MinPoints.
	ErrInsufficientResolution = errors.New("naca: point count below minimum")
)
