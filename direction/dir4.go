package direction

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
)

// Dir4 is one of the four orthogonal directions.
type Dir4 int

const (
	Up Dir4 = iota
	Right
	Down
	Left
)

var (
	dir4Vectors = [4]geom.Point2D{
		Up:    {X: 0, Y: -1},
		Right: {X: 1, Y: 0},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
	}

	// dir4Turns[d][t] is d turned by t.
	dir4Turns = [4][3]Dir4{
		Up:    {TurnLeft: Left, TurnRight: Right, TurnBack: Down},
		Right: {TurnLeft: Up, TurnRight: Down, TurnBack: Left},
		Down:  {TurnLeft: Right, TurnRight: Left, TurnBack: Up},
		Left:  {TurnLeft: Down, TurnRight: Up, TurnBack: Right},
	}

	dir4Arrows = [4]rune{Up: '^', Right: '>', Down: 'v', Left: '<'}
	dir4Names  = [4]string{Up: "up", Right: "right", Down: "down", Left: "left"}
)

// AllDir4 returns Up, Right, Down, Left in that order.
func AllDir4() []Dir4 {
	return []Dir4{Up, Right, Down, Left}
}

// FromArrow parses an arrow glyph (^ v < >) or a letter (U D L R) into a Dir4.
// Any other rune fails with ErrUnrecognizedGlyph.
func FromArrow(r rune) (Dir4, error) {
	switch r {
	case '^', 'U':
		return Up, nil
	case '>', 'R':
		return Right, nil
	case 'v', 'D':
		return Down, nil
	case '<', 'L':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedGlyph, r)
}

// Valid reports whether d is one of the four declared directions.
func (d Dir4) Valid() bool { return d >= Up && d <= Left }

// Vector returns the unit step for d.
func (d Dir4) Vector() geom.Point2D { return dir4Vectors[d] }

// Turn rotates d by t.
func (d Dir4) Turn(t Turn) Dir4 { return dir4Turns[d][t] }

// Opposite returns the direction 180° from d.
func (d Dir4) Opposite() Dir4 { return dir4Turns[d][TurnBack] }

// Step returns p moved one unit in direction d.
func (d Dir4) Step(p geom.Point2D) geom.Point2D { return p.Add(dir4Vectors[d]) }

// Arrow returns the arrow glyph for d.
func (d Dir4) Arrow() rune { return dir4Arrows[d] }

func (d Dir4) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dir4(%d)", int(d))
	}
	return dir4Names[d]
}

// Neighbors4 returns the orthogonal neighbors of p in AllDir4 order.
func Neighbors4(p geom.Point2D) [4]geom.Point2D {
	var out [4]geom.Point2D
	for i, v := range dir4Vectors {
		out[i] = p.Add(v)
	}
	return out
}
