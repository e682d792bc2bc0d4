package mapper

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// UMapper folds one long panel chain into a U shape: the chain runs left
// to right along the top half of each fold, bends around, and runs right
// to left along the bottom half. A chain of four 32×32 panels
//
//	[<][<][<][<] }- connector
//
// then displays as a 64×64 square
//
//	[<][<] }- connector
//	[>][>]
//
// with parallel chains stacking such folds vertically. The visible width
// halves (folds anchor at 64-pixel boundaries, in 32-pixel panel units)
// and the visible height doubles.
type UMapper struct {
	parallel int
	logger   *log.Logger
}

// NewUMapper builds a U-fold mapper for the given physical geometry.
// chainLength must be at least 2 and even — anything else describes a
// chain that cannot bend around — yielding ErrChainTooShort or
// ErrChainOdd. parallel is the number of stacked data chains.
func NewUMapper(chainLength, parallel int, opts ...Option) (*UMapper, error) {
	if chainLength < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrChainTooShort, chainLength)
	}
	if chainLength%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrChainOdd, chainLength)
	}
	o := newOptions(opts)

	return &UMapper{parallel: parallel, logger: o.logger}, nil
}

// SizeMapping folds the matrix: half the width (in 32-pixel units at
// 64-pixel boundaries), twice the height. A matrix height that the
// parallel chain count does not divide evenly is geometrically imperfect;
// it is reported as a warning and the truncated fold is returned anyway.
// Complexity: O(1).
func (u *UMapper) SizeMapping(matrixWidth, matrixHeight int) (int, int) {
	visibleWidth := (matrixWidth / 64) * 32 // fold at the 64px boundary
	visibleHeight := 2 * matrixHeight
	if matrixHeight%u.parallel != 0 {
		u.logger.Warn("U-mapper: matrix height is not divisible by the parallel chain count",
			"matrix_height", matrixHeight, "parallel", u.parallel)
	}

	return visibleWidth, visibleHeight
}

// MapVisibleToMatrix places the pixel on its fold. The top half of a fold
// ("going right") lands on the right half of the physical row; the bottom
// half ("folded back, going left") lands on a mirrored column with an
// inverted row. Folds stack vertically, one per parallel chain.
// Complexity: O(1), allocation-free.
func (u *UMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, visibleX, visibleY int) (int, int) {
	panelHeight := matrixHeight / u.parallel
	visibleWidth := (matrixWidth / 64) * 32
	slabHeight := 2 * panelHeight // one folded U shape
	baseY := (visibleY / slabHeight) * panelHeight

	matrixX := visibleX
	matrixY := visibleY % slabHeight

	if matrixY < panelHeight {
		matrixX += matrixWidth / 2
	} else {
		matrixX = visibleWidth - visibleX - 1
		matrixY = slabHeight - visibleY - 1
	}

	return matrixX, baseY + matrixY
}
