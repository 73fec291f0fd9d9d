package entities

import (
	"image/color"

	"mazechase/internal/geom"
)

// PositionStatus is where a ghost is relative to its pen.
type PositionStatus int

const (
	InPen PositionStatus = iota
	OutAndAbout
	ReturningToPen
)

func (s PositionStatus) String() string {
	switch s {
	case InPen:
		return "in-pen"
	case OutAndAbout:
		return "out-and-about"
	case ReturningToPen:
		return "returning-to-pen"
	}
	return "unknown"
}

// ActionStatus is the behavior a ghost is running.
type ActionStatus int

const (
	Idle ActionStatus = iota
	LeavingPen
	SearchingForPlayer
	Weakened
	RunningToPen
	GoingIntoPen
)

func (s ActionStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case LeavingPen:
		return "leaving-pen"
	case SearchingForPlayer:
		return "searching"
	case Weakened:
		return "weakened"
	case RunningToPen:
		return "running-to-pen"
	case GoingIntoPen:
		return "going-into-pen"
	}
	return "unknown"
}

// PositionFor is the position status implied by an action.
func PositionFor(a ActionStatus) PositionStatus {
	switch a {
	case Idle, LeavingPen:
		return InPen
	case RunningToPen, GoingIntoPen:
		return ReturningToPen
	default:
		return OutAndAbout
	}
}

// Sprite is the render state of a ghost's body.
type Sprite struct {
	Visible bool
	Tint    color.RGBA
}

// EyesSprite is the render state of a ghost's eyes. Frame is picked by
// EyesFrame from the heading.
type EyesSprite struct {
	Visible bool
	Frame   int
}

// GhostSpec is one roster entry.
type GhostSpec struct {
	Name     string
	Color    color.RGBA
	PenDelay float64
	Speed    float64
	Start    geom.Vec2
}

type Ghost struct {
	Name      string
	Pos       geom.Vec2
	Heading   Heading
	Speed     float64
	BaseSpeed float64
	BaseColor color.RGBA

	Position PositionStatus
	Action   ActionStatus

	TimeInPen     Timer
	WeakenedTimer *Timer

	lastDecision    geom.Point
	hasLastDecision bool

	Body Sprite
	Eyes EyesSprite

	spec GhostSpec
}

func NewGhost(spec GhostSpec) *Ghost {
	g := &Ghost{spec: spec}
	g.Reset()
	return g
}

// Reset restores the ghost to its spawn state in the pen.
func (g *Ghost) Reset() {
	s := g.spec
	*g = Ghost{
		Name:      s.Name,
		Pos:       s.Start,
		Heading:   HeadingLeft,
		Speed:     s.Speed,
		BaseSpeed: s.Speed,
		BaseColor: s.Color,
		Position:  InPen,
		Action:    Idle,
		TimeInPen: NewTimer(s.PenDelay),
		Body:      Sprite{Visible: true, Tint: s.Color},
		Eyes:      EyesSprite{Visible: true},
		spec:      s,
	}
	g.Eyes.Frame = EyesFrame(g.Heading)
}

// SetAction switches behavior and keeps the position status in step.
func (g *Ghost) SetAction(a ActionStatus) {
	g.Action = a
	g.Position = PositionFor(a)
}

// LastDecision returns the cell the ghost last chose a direction on.
func (g *Ghost) LastDecision() (geom.Point, bool) {
	return g.lastDecision, g.hasLastDecision
}

// MarkDecision records a decision at cell and reports whether it is new.
func (g *Ghost) MarkDecision(cell geom.Point) bool {
	if g.hasLastDecision && g.lastDecision == cell {
		return false
	}
	g.lastDecision = cell
	g.hasLastDecision = true
	return true
}

func (g *Ghost) ClearDecision() {
	g.hasLastDecision = false
}

// EyesFrame picks the eyes sprite frame: right, left, up, down, none.
func EyesFrame(h Heading) int {
	switch {
	case h.Horizontal == Right:
		return 0
	case h.Horizontal == Left:
		return 1
	case h.Vertical == Up:
		return 2
	case h.Vertical == Down:
		return 3
	}
	return 4
}
