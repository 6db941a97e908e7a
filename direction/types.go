package direction

import "errors"

// ErrUnrecognizedGlyph indicates input that does not name a direction.
var ErrUnrecognizedGlyph = errors.New("direction: unrecognized glyph")

// Turn is a relative rotation.
type Turn int

const (
	// TurnLeft rotates counter-clockwise by one step.
	TurnLeft Turn = iota
	// TurnRight rotates clockwise by one step.
	TurnRight
	// TurnBack rotates by 180°.
	TurnBack
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnBack:
		return "back"
	}
	return "turn(?)"
}
