// Package ledmap maps the logical pixel space an application draws into
// onto the physical pixel space of a chained LED panel matrix.
//
// 🚀 What is ledmap?
//
//	A small, pure-computation library that sits between a framebuffer and
//	the low-level matrix driver:
//		• Mirror mapping: flip the display horizontally or vertically
//		• Rotate mapping: turn the display by 0/90/180/270 degrees
//		• U-mapper: fold one long panel chain into a U shape, trading
//		  chain length for display height
//		• Chains: apply several mappings in order, left to right
//
// ✨ Why choose ledmap?
//
//   - Driver-agnostic – works against plain (width, height, x, y) integers
//   - Allocation-free mapping – safe to call once per pixel per frame
//   - Concurrent readers – every mapper is immutable after construction
//   - Config-friendly – one-line textual mapper descriptions ("Mirror:H",
//     "Rotate:90", "U-mapper") parse straight into mappers
//
// Everything lives in one subpackage:
//
//	mapper/ — the Mapper interface, the three mappings, the parser and Chain
//
// Quick ASCII example — four chained 32×32 panels folded into a 64×64 square:
//
//	chain as wired:            folded with U-mapper:
//
//	    [<][<][<][<] }- connector      [<][<] }- connector
//	                                   [>][>]
//
// See the mapper package for the full API.
package ledmap
