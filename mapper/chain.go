package mapper

// Chain composes mappers in their listed order: the visible space produced
// by stage k is the matrix space consumed by stage k+1, so an application
// draws into the last stage's visible space and the driver reads the first
// stage's matrix space. A Chain is itself a Mapper; an empty Chain is the
// identity.
type Chain struct {
	stages []Mapper
}

// NewChain builds a composite mapper applying the given mappers left to
// right. The slice is copied; the mappers themselves are shared.
func NewChain(mappers ...Mapper) *Chain {
	stages := make([]Mapper, len(mappers))
	copy(stages, mappers)

	return &Chain{stages: stages}
}

// Len reports the number of stages.
func (c *Chain) Len() int { return len(c.stages) }

// SizeMapping threads the matrix dimensions through every stage in order.
// Complexity: O(k) for k stages.
func (c *Chain) SizeMapping(matrixWidth, matrixHeight int) (int, int) {
	w, h := matrixWidth, matrixHeight
	for _, m := range c.stages {
		w, h = m.SizeMapping(w, h)
	}

	return w, h
}

// MapVisibleToMatrix walks the stages back to front: the last stage maps
// the application coordinate into its own matrix space, which is the
// previous stage's visible space, and so on down to the physical matrix.
// Each stage sees the matrix dimensions produced by the stages before it.
// Complexity: O(k²) worst case for k stages (dimension recomputation per
// stage); k is the configured mapper count, in practice 1–3.
func (c *Chain) MapVisibleToMatrix(matrixWidth, matrixHeight, visibleX, visibleY int) (int, int) {
	x, y := visibleX, visibleY
	for i := len(c.stages) - 1; i >= 0; i-- {
		w, h := matrixWidth, matrixHeight
		for _, m := range c.stages[:i] {
			w, h = m.SizeMapping(w, h)
		}
		x, y = c.stages[i].MapVisibleToMatrix(w, h, x, y)
	}

	return x, y
}
