package mapper

import "fmt"

// Rotate turns the display by a right-angle multiple. For 90 and 270
// degrees the visible width and height swap; four 90-degree rotations
// compose to the identity.
type Rotate struct {
	// Angle is one of 0, 90, 180 or 270. Parse guarantees this; any other
	// value is an internal invariant violation.
	Angle int
}

// SizeMapping keeps dimensions for 0/180 and swaps them for 90/270.
// Complexity: O(1).
func (r Rotate) SizeMapping(matrixWidth, matrixHeight int) (int, int) {
	if r.Angle%180 == 0 {
		return matrixWidth, matrixHeight
	}

	return matrixHeight, matrixWidth
}

// MapVisibleToMatrix rotates the coordinate clockwise by the configured
// angle. Complexity: O(1).
func (r Rotate) MapVisibleToMatrix(matrixWidth, matrixHeight, visibleX, visibleY int) (int, int) {
	switch r.Angle {
	case 0:
		return visibleX, visibleY
	case 90:
		return matrixWidth - visibleY - 1, visibleX
	case 180:
		return matrixWidth - visibleX - 1, matrixHeight - visibleY - 1
	case 270:
		return visibleY, matrixHeight - visibleX - 1
	default:
		// Unreachable after Parse; a raw Rotate literal with a bad angle
		// is a programming error, not a data condition.
		panic(fmt.Sprintf("mapper: rotation angle %d is not a multiple of 90 in [0,360)", r.Angle))
	}
}
