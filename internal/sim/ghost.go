package sim

import (
	"image/color"
	"math"

	"mazechase/internal/config"
	"mazechase/internal/entities"
	"mazechase/internal/geom"
	"mazechase/internal/motion"
	"mazechase/internal/tilemap"
)

var (
	// PenExit is the cell-edge point just above the pen door.
	PenExit = geom.Vec2{X: 12.5, Y: 10}
	// PenCenter is where a returning ghost settles before idling again.
	PenCenter = geom.Vec2{X: 12.5, Y: 13}
	// PlayerStart is the player's spawn point below the pen.
	PlayerStart = geom.Vec2{X: 12.5, Y: 16}
)

const (
	penMinX = 10.0
	penMaxX = 15.0

	penXTolerance   = 0.1
	penYTolerance   = 0.01
	arriveTolerance = 0.3
)

// WeakenedTint is the body color of a weakened ghost.
var WeakenedTint = color.RGBA{R: 21, G: 36, B: 97, A: 255}

// GhostStep reports what StepGhost did.
type GhostStep struct {
	From, To entities.ActionStatus
	// Decided is set when the ghost picked a heading this tick.
	Decided bool
	Options int
	Random  bool
	Warped  bool
}

// Transitioned reports whether the ghost changed behavior this tick.
func (s GhostStep) Transitioned() bool { return s.From != s.To }

// StepGhost advances one ghost by dt according to its current action.
func StepGhost(m *tilemap.Maze, g *entities.Ghost, playerPos geom.Vec2, dt float64, rng Rand, t config.Tuning) GhostStep {
	step := GhostStep{From: g.Action}
	penMove := t.PenSpeed * dt

	switch g.Action {
	case entities.Idle:
		g.Pos.X += penMove * float64(g.Heading.Horizontal)
		g.Pos.Y += penMove * float64(g.Heading.Vertical)
		if g.Pos.X > penMaxX {
			g.Heading.Horizontal = entities.Left
		} else if g.Pos.X < penMinX {
			g.Heading.Horizontal = entities.Right
		}
		if g.TimeInPen.Tick(dt) {
			g.SetAction(entities.LeavingPen)
		}

	case entities.LeavingPen:
		leavePen(g, penMove, rng)

	case entities.SearchingForPlayer:
		chance := math.Min(g.Pos.Dist(playerPos)/t.RandomDistanceScale, t.MaxRandomChance)
		roam(m, g, playerPos, chance, g.Speed*dt, rng, &step)

	case entities.Weakened:
		if g.WeakenedTimer != nil {
			g.WeakenedTimer.Tick(dt)
		}
		if g.WeakenedTimer == nil || g.WeakenedTimer.Finished() {
			endWeakness(g)
			chance := math.Min(g.Pos.Dist(playerPos)/t.RandomDistanceScale, t.MaxRandomChance)
			roam(m, g, playerPos, chance, g.Speed*dt, rng, &step)
			break
		}
		g.Speed = t.GhostWeakenedSpeed
		away := g.Pos.Scale(2).Sub(playerPos)
		roam(m, g, away, t.WeakenedRandom, g.Speed*dt, rng, &step)

	case entities.RunningToPen:
		g.Speed = t.GhostRunningHome
		roam(m, g, PenExit, 0, g.Speed*dt, rng, &step)
		if math.Abs(g.Pos.X-PenExit.X) < arriveTolerance && math.Abs(g.Pos.Y-PenExit.Y) < arriveTolerance {
			g.Pos = PenExit
			g.Heading = entities.HeadingDown
			g.SetAction(entities.GoingIntoPen)
		}

	case entities.GoingIntoPen:
		g.Pos.X = PenCenter.X
		g.Heading = entities.HeadingDown
		g.Pos.Y += math.Min(penMove, PenCenter.Y-g.Pos.Y)
		if math.Abs(g.Pos.Y-PenCenter.Y) < penYTolerance {
			g.Pos.Y = PenCenter.Y
			g.Body = entities.Sprite{Visible: true, Tint: g.BaseColor}
			g.Speed = g.BaseSpeed
			g.TimeInPen = entities.NewTimer(t.ReturnPenDelay)
			g.Heading = randomSideways(rng)
			g.ClearDecision()
			g.SetAction(entities.Idle)
		}
	}

	g.Eyes.Frame = entities.EyesFrame(g.Heading)
	step.To = g.Action
	return step
}

func leavePen(g *entities.Ghost, move float64, rng Rand) {
	if math.Abs(g.Pos.X-PenExit.X) >= penXTolerance {
		dx := g.Pos.X - PenExit.X
		g.Heading = entities.HeadingRight
		if dx > 0 {
			g.Heading = entities.HeadingLeft
			g.Pos.X -= math.Min(move, dx)
		} else {
			g.Pos.X -= math.Max(-move, dx)
		}
		return
	}

	g.Pos.X = PenExit.X
	dy := g.Pos.Y - PenExit.Y
	if dy > 0 {
		g.Heading = entities.HeadingUp
		g.Pos.Y -= math.Min(move, dy)
	} else {
		g.Heading = entities.HeadingDown
		g.Pos.Y -= math.Max(-move, dy)
	}
	if math.Abs(g.Pos.Y-PenExit.Y) < penYTolerance {
		g.Pos.Y = PenExit.Y
		g.Heading = randomSideways(rng)
		g.ClearDecision()
		g.SetAction(entities.SearchingForPlayer)
	}
}

func endWeakness(g *entities.Ghost) {
	g.WeakenedTimer = nil
	g.Speed = g.BaseSpeed
	g.Body.Tint = g.BaseColor
	g.SetAction(entities.SearchingForPlayer)
}

func randomSideways(rng Rand) entities.Heading {
	if rng.Intn(2) == 0 {
		return entities.HeadingLeft
	}
	return entities.HeadingRight
}

// roam is the shared corridor behavior of the out-of-pen actions: decide
// once per decision cell, then move. A move that runs into a wall snaps the
// ghost to the cell and decides again there.
func roam(m *tilemap.Maze, g *entities.Ghost, target geom.Vec2, chance, dist float64, rng Rand, step *GhostStep) {
	if motion.AtDecisionPoint(g.Pos, g.Heading) && g.MarkDecision(g.Pos.Cell()) {
		decide(m, g, target, chance, rng, step)
	}

	res := motion.AttemptMove(m, g.Pos, g.Heading, dist)
	g.Pos = res.Pos
	step.Warped = step.Warped || res.Warped
	if res.Blocked {
		g.MarkDecision(g.Pos.Cell())
		decide(m, g, target, chance, rng, step)
	}
}

func decide(m *tilemap.Maze, g *entities.Ghost, target geom.Vec2, chance float64, rng Rand, step *GhostStep) {
	dirs := motion.AvailableDirections(g.Pos, g.Heading, m)
	if len(dirs) == 0 {
		return
	}
	var choice entities.Heading
	if len(dirs) > 1 && rng.Float64() < chance {
		choice = dirs[rng.Intn(len(dirs))]
		step.Random = true
	} else {
		choice = ChooseDirectionToward(target, g.Pos, dirs, rng)
	}
	step.Decided = true
	step.Options = len(dirs)

	if choice != g.Heading {
		if choice.Horizontal == entities.NoHorizontal {
			g.Pos.X = math.Round(g.Pos.X)
		} else if choice.Vertical == entities.NoVertical {
			g.Pos.Y = math.Round(g.Pos.Y)
		}
	}
	g.Heading = choice
}

// ChooseDirectionToward is a greedy one-step heuristic: head along the axis
// with the larger distance to target, else along the other axis, else pick
// any open direction at random. Equal distances favor the horizontal axis.
func ChooseDirectionToward(target, current geom.Vec2, available []entities.Heading, rng Rand) entities.Heading {
	if len(available) == 0 {
		return entities.HeadingNone
	}
	dx := target.X - current.X
	dy := target.Y - current.Y

	hor := entities.HeadingRight
	if dx < 0 {
		hor = entities.HeadingLeft
	}
	ver := entities.HeadingDown
	if dy < 0 {
		ver = entities.HeadingUp
	}
	preferred, second := hor, ver
	if math.Abs(dy) > math.Abs(dx) {
		preferred, second = ver, hor
	}

	for _, want := range []entities.Heading{preferred, second} {
		for _, d := range available {
			if d == want {
				return d
			}
		}
	}
	if len(available) == 1 {
		return available[0]
	}
	return available[rng.Intn(len(available))]
}
