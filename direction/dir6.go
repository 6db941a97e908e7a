package direction

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Dir6 is one of the six hex directions in axial coordinates (q = X, r = Y).
type Dir6 int

const (
	HexN Dir6 = iota
	HexNE
	HexSE
	HexS
	HexSW
	HexNW
)

var (
	dir6Vectors = [6]geom.Point2D{
		HexN:  {X: 0, Y: -1},
		HexNE: {X: 1, Y: -1},
		HexSE: {X: 1, Y: 0},
		HexS:  {X: 0, Y: 1},
		HexSW: {X: -1, Y: 1},
		HexNW: {X: -1, Y: 0},
	}

	dir6Turns = [6][3]Dir6{
		HexN:  {TurnLeft: HexNW, TurnRight: HexNE, TurnBack: HexS},
		HexNE: {TurnLeft: HexN, TurnRight: HexSE, TurnBack: HexSW},
		HexSE: {TurnLeft: HexNE, TurnRight: HexS, TurnBack: HexNW},
		HexS:  {TurnLeft: HexSE, TurnRight: HexSW, TurnBack: HexN},
		HexSW: {TurnLeft: HexS, TurnRight: HexNW, TurnBack: HexNE},
		HexNW: {TurnLeft: HexSW, TurnRight: HexN, TurnBack: HexSE},
	}

	dir6Names = [6]string{HexN: "n", HexNE: "ne", HexSE: "se", HexS: "s", HexSW: "sw", HexNW: "nw"}
)

// AllDir6 returns HexN, HexNE, HexSE, HexS, HexSW, HexNW in that order.
func AllDir6() []Dir6 {
	return []Dir6{HexN, HexNE, HexSE, HexS, HexSW, HexNW}
}

// ParseDir6 parses a hex step name: n, ne, se, s, sw or nw (any case).
func ParseDir6(s string) (Dir6, error) {
	l := strings.ToLower(strings.TrimSpace(s))
	for d, name := range dir6Names {
		if name == l {
			return Dir6(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedGlyph, s)
}

// Valid reports whether d is one of the six declared directions.
func (d Dir6) Valid() bool { return d >= HexN && d <= HexNW }

// Vector returns the axial unit step for d; its HexDistance from the origin is 1.
func (d Dir6) Vector() geom.Point2D { return dir6Vectors[d] }

// Turn rotates d by t (60° for TurnLeft/TurnRight).
func (d Dir6) Turn(t Turn) Dir6 { return dir6Turns[d][t] }

// Opposite returns the direction 180° from d.
func (d Dir6) Opposite() Dir6 { return dir6Turns[d][TurnBack] }

// Step returns p moved one hex in direction d.
func (d Dir6) Step(p geom.Point2D) geom.Point2D { return p.Add(dir6Vectors[d]) }

// String returns the lower-case step name, e.g. "ne".
func (d Dir6) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dir6(%d)", int(d))
	}
	return dir6Names[d]
}
