// Package mapper translates visible (logical) pixel coordinates into
// matrix (physical) pixel coordinates for chained LED panel displays.
//
// What:
//
//   - Mapper is the contract every mapping implements: a size mapping
//     (physical → visible dimensions) and a per-pixel coordinate mapping
//     (visible → physical).
//   - Mirror flips the display along the horizontal or vertical axis.
//   - Rotate turns the display by 0, 90, 180 or 270 degrees.
//   - UMapper folds one long panel chain into a U shape, halving the
//     visible width and doubling the visible height per parallel chain.
//   - Chain applies several mappers in order, left to right; each stage's
//     visible space becomes the next stage's matrix space.
//   - Parse / ParseSequence turn textual descriptions ("Mirror:H",
//     "Rotate:90", "U-mapper") into Spec descriptors; Spec.Create binds a
//     descriptor to the physical chain geometry; Compile does all of it.
//
// Why:
//
//   - Panel chains rarely hang the way applications want to draw: displays
//     get mounted upside down, rotated, or folded to save data chains.
//   - Keeping the remap pure and separate lets the driver and the
//     framebuffer stay oblivious to physical wiring.
//
// Complexity:
//
//   - SizeMapping:        O(1) per mapper, O(k) for a k-stage Chain.
//   - MapVisibleToMatrix: O(1) per mapper, O(k) for a k-stage Chain;
//     allocation-free — it runs once per pixel per frame.
//
// Errors:
//
//   - ErrUnknownMapper: the token names no known mapping.
//   - ErrMirrorAxis: Mirror parameter other than 'H'/'h'/'V'/'v'.
//   - ErrRotateAngle: Rotate parameter missing or not an unsigned integer.
//   - ErrRotateStep: Rotate angle not a multiple of 90 degrees.
//   - ErrChainTooShort: U-mapper needs a chain of at least two panels.
//   - ErrChainOdd: U-mapper needs an even chain length.
//
// Out-of-range visible coordinates are a caller contract violation: mapping
// never fails, but the result may fall outside the matrix. Callers own
// bounds checking.
package mapper
