// Package mapper defines the Mapper contract, the Spec descriptor and
// construction options for the mapper subpackage of
// github.com/katalvlaran/ledmap.
package mapper

import (
	"github.com/charmbracelet/log"
)

// Mapper converts between the visible pixel space an application draws
// into and the matrix pixel space the panel driver addresses.
//
// Implementations are immutable after construction and safe for any number
// of concurrent readers. MapVisibleToMatrix is allocation-free: it is the
// per-pixel hot path of a frame transfer.
type Mapper interface {
	// SizeMapping returns the visible (logical) dimensions this mapper
	// exposes for a matrix of the given physical dimensions.
	// Complexity: O(1).
	SizeMapping(matrixWidth, matrixHeight int) (visibleWidth, visibleHeight int)

	// MapVisibleToMatrix translates one visible coordinate into its matrix
	// coordinate. visibleX and visibleY must lie inside the dimensions
	// SizeMapping returned for the same matrix dimensions; out-of-range
	// input is a caller contract violation and may map outside the matrix.
	// Complexity: O(1), allocation-free.
	MapVisibleToMatrix(matrixWidth, matrixHeight, visibleX, visibleY int) (matrixX, matrixY int)
}

// Kind identifies one of the closed set of mapping strategies.
type Kind int

const (
	// KindMirror flips the display along one axis.
	KindMirror Kind = iota
	// KindRotate turns the display by a right-angle multiple.
	KindRotate
	// KindUMapper folds a long panel chain into a U shape.
	KindUMapper
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMirror:
		return "Mirror"
	case KindRotate:
		return "Rotate"
	case KindUMapper:
		return "U-mapper"
	default:
		return "Unknown"
	}
}

// Spec is a parsed mapping description: which strategy to build and its
// parameters. Immutable once produced by Parse; bind it to the physical
// chain geometry with Create.
type Spec struct {
	// Kind selects the strategy.
	Kind Kind
	// Horizontal selects the mirror axis (KindMirror only):
	// true flips X, false flips Y.
	Horizontal bool
	// Angle is the rotation in degrees (KindRotate only),
	// normalized into [0,360) at parse time.
	Angle int
}

// Option tunes mapper construction.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger routes construction-time and size-mapping diagnostics to l
// instead of the process-default logger. Mapping itself never logs.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{logger: log.Default()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
