// Package direction provides closed enumerations of grid directions for
// 4-connected, 8-connected and axial-hex (6-connected) lattices.
//
// Every enumeration maps each direction to a unit geom.Point2D vector,
// turns with static lookup tables (never trigonometry), and exposes its
// members in a fixed, documented order that neighbor scans rely on:
//
//   - Dir4: Up, Right, Down, Left                 (clockwise from up)
//   - Dir8: N, NE, E, SE, S, SW, W, NW            (clockwise from north)
//   - Dir6: HexN, HexNE, HexSE, HexS, HexSW, HexNW (clockwise from north)
//
// Screen coordinates are assumed: Y grows downward, so Up is (0,-1).
// Dir6 uses axial hex coordinates (q = X, r = Y), matching
// geom.Point2D.HexDistance.
//
// Turn semantics:
//
//   - TurnLeft / TurnRight rotate by one position in the enumeration order
//     (90° for Dir4, 60° for Dir6, 45° for Dir8).
//   - TurnBack rotates by 180°; Opposite() is the same as Turn(TurnBack).
//
// Calling methods on a value outside its enumeration panics; use Valid
// to check values that did not come from this package.
//
// Errors:
//
//   - ErrUnrecognizedGlyph: a glyph or name does not denote a direction.
package direction
