package entities

import "mazechase/internal/geom"

// Vertical and Horizontal are the two independent axes of a Heading. Their
// values are the unit step along the axis in grid space.
type Vertical int8

const (
	Up         Vertical = -1
	NoVertical Vertical = 0
	Down       Vertical = 1
)

type Horizontal int8

const (
	Left         Horizontal = -1
	NoHorizontal Horizontal = 0
	Right        Horizontal = 1
)

// Heading is a direction of travel. At most one axis is non-zero while an
// actor is moving; the zero value means standing still.
type Heading struct {
	Vertical   Vertical
	Horizontal Horizontal
}

var (
	HeadingNone  = Heading{}
	HeadingUp    = Heading{Vertical: Up}
	HeadingDown  = Heading{Vertical: Down}
	HeadingLeft  = Heading{Horizontal: Left}
	HeadingRight = Heading{Horizontal: Right}
)

// Cardinal lists the four axis headings in decision order. Indexed choices
// between available directions rely on this order being stable.
var Cardinal = [4]Heading{HeadingLeft, HeadingRight, HeadingUp, HeadingDown}

// Delta returns the grid step for h.
func (h Heading) Delta() (dx, dy int) {
	return int(h.Horizontal), int(h.Vertical)
}

func (h Heading) Unit() geom.Vec2 {
	return geom.Vec2{X: float64(h.Horizontal), Y: float64(h.Vertical)}
}

func (h Heading) IsZero() bool { return h == HeadingNone }

// Reverse flips both axes; the reverse of HeadingNone is HeadingNone.
func (h Heading) Reverse() Heading {
	return Heading{Vertical: -h.Vertical, Horizontal: -h.Horizontal}
}

func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	}
	return "diagonal"
}

// Facing is how a sprite should be turned for a heading. It is derived for
// the renderer and carries no game logic.
type Facing struct {
	Degrees  float64
	Mirrored bool
}

// FacingFor maps Right to 0, Up to 90, Left to 180 (mirrored so the sprite
// is not upside down) and Down to 270 degrees. Axis contributions are added,
// so a transient two-axis heading yields their sum.
func FacingFor(h Heading) Facing {
	var deg float64
	if h.Horizontal != NoHorizontal {
		deg += 90 - float64(h.Horizontal)*90
	}
	if h.Vertical != NoVertical {
		deg += float64(h.Vertical)*90 + 180
	}
	return Facing{Degrees: deg, Mirrored: deg == 180}
}
