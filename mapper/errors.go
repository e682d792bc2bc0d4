package mapper

import "errors"

// Sentinel errors for mapper parsing and construction.
var (
	// ErrUnknownMapper indicates a token that names no known pixel mapping.
	ErrUnknownMapper = errors.New("mapper: not a valid pixel mapping")
	// ErrMirrorAxis indicates a Mirror parameter other than 'H'/'h'/'V'/'v'.
	ErrMirrorAxis = errors.New("mapper: mirror parameter must be either 'H' or 'V'")
	// ErrRotateAngle indicates a missing or non-numeric rotation angle.
	ErrRotateAngle = errors.New("mapper: rotation angle is missing or invalid")
	// ErrRotateStep indicates a rotation angle that is not a multiple of 90.
	ErrRotateStep = errors.New("mapper: rotation must be a multiple of 90 degrees")
	// ErrChainTooShort indicates a U-mapper chain of fewer than two panels.
	ErrChainTooShort = errors.New("mapper: U-mapper needs a chain length of at least 2 for useful folding")
	// ErrChainOdd indicates a U-mapper chain length not divisible by two.
	ErrChainOdd = errors.New("mapper: U-mapper chain length must be divisible by two")
)
