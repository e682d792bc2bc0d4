package mapper

// Mirror flips the display along one axis. The visible size equals the
// matrix size; applying the same mirror twice is the identity transform.
type Mirror struct {
	// Horizontal flips X when true, Y when false.
	Horizontal bool
}

// SizeMapping is the identity: mirroring never changes dimensions.
// Complexity: O(1).
func (m Mirror) SizeMapping(matrixWidth, matrixHeight int) (int, int) {
	return matrixWidth, matrixHeight
}

// MapVisibleToMatrix reflects the coordinate across the configured axis.
// Complexity: O(1).
func (m Mirror) MapVisibleToMatrix(matrixWidth, matrixHeight, visibleX, visibleY int) (int, int) {
	if m.Horizontal {
		return matrixWidth - 1 - visibleX, visibleY
	}

	return visibleX, matrixHeight - 1 - visibleY
}
