package direction

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Dir8 is one of the eight king-move directions, clockwise from north.
type Dir8 int

const (
	N Dir8 = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

var (
	dir8Vectors = [8]geom.Point2D{
		N:  {X: 0, Y: -1},
		NE: {X: 1, Y: -1},
		E:  {X: 1, Y: 0},
		SE: {X: 1, Y: 1},
		S:  {X: 0, Y: 1},
		SW: {X: -1, Y: 1},
		W:  {X: -1, Y: 0},
		NW: {X: -1, Y: -1},
	}

	dir8Turns = [8][3]Dir8{
		N:  {TurnLeft: NW, TurnRight: NE, TurnBack: S},
		NE: {TurnLeft: N, TurnRight: E, TurnBack: SW},
		E:  {TurnLeft: NE, TurnRight: SE, TurnBack: W},
		SE: {TurnLeft: E, TurnRight: S, TurnBack: NW},
		S:  {TurnLeft: SE, TurnRight: SW, TurnBack: N},
		SW: {TurnLeft: S, TurnRight: W, TurnBack: NE},
		W:  {TurnLeft: SW, TurnRight: NW, TurnBack: E},
		NW: {TurnLeft: W, TurnRight: N, TurnBack: SE},
	}

	dir8Names = [8]string{N: "N", NE: "NE", E: "E", SE: "SE", S: "S", SW: "SW", W: "W", NW: "NW"}
)

// AllDir8 returns N, NE, E, SE, S, SW, W, NW in that order.
func AllDir8() []Dir8 {
	return []Dir8{N, NE, E, SE, S, SW, W, NW}
}

// ParseDir8 parses a compass name such as "ne" or "SW".
func ParseDir8(s string) (Dir8, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for d, name := range dir8Names {
		if name == u {
			return Dir8(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedGlyph, s)
}

// Valid reports whether d is one of the eight declared directions.
func (d Dir8) Valid() bool { return d >= N && d <= NW }

// Vector returns the unit step for d. Diagonals have Chebyshev length 1.
func (d Dir8) Vector() geom.Point2D { return dir8Vectors[d] }

// Turn rotates d by t (45° for TurnLeft/TurnRight).
func (d Dir8) Turn(t Turn) Dir8 { return dir8Turns[d][t] }

// Turn90 rotates d by 90°, clockwise when right is true.
func (d Dir8) Turn90(right bool) Dir8 {
	if right {
		return d.Turn(TurnRight).Turn(TurnRight)
	}
	return d.Turn(TurnLeft).Turn(TurnLeft)
}

// Opposite returns the direction 180° from d.
func (d Dir8) Opposite() Dir8 { return dir8Turns[d][TurnBack] }

// Step returns p moved one unit in direction d.
func (d Dir8) Step(p geom.Point2D) geom.Point2D { return p.Add(dir8Vectors[d]) }

// Diagonal reports whether d moves on both axes.
func (d Dir8) Diagonal() bool { return d%2 == 1 }

func (d Dir8) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dir8(%d)", int(d))
	}
	return dir8Names[d]
}

// Neighbors8 returns the eight surrounding points of p in AllDir8 order.
func Neighbors8(p geom.Point2D) [8]geom.Point2D {
	var out [8]geom.Point2D
	for i, v := range dir8Vectors {
		out[i] = p.Add(v)
	}
	return out
}
