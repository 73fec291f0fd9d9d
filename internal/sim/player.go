package sim

import (
	"math"

	"mazechase/internal/entities"
	"mazechase/internal/geom"
	"mazechase/internal/motion"
	"mazechase/internal/tilemap"
)

// Input is the pressed direction for one tick, one signal per axis.
type Input struct {
	Vertical   entities.Vertical
	Horizontal entities.Horizontal
}

// CombineKeys folds raw key state into an Input. Opposite keys on the same
// axis cancel out.
func CombineKeys(up, down, left, right bool) Input {
	var in Input
	if up != down {
		in.Vertical = entities.Down
		if up {
			in.Vertical = entities.Up
		}
	}
	if left != right {
		in.Horizontal = entities.Right
		if left {
			in.Horizontal = entities.Left
		}
	}
	return in
}

// PlayerStep reports what StepPlayer did.
type PlayerStep struct {
	From    geom.Vec2
	Moved   bool
	Stopped bool
	Warped  bool
	Facing  entities.Facing
}

// StepPlayer advances the player one tick. A pressed vertical direction is
// tried first, then a pressed horizontal one; turning onto the other axis is
// only allowed at a decision point. If neither input produces a move the
// player keeps going the way it was heading, and if that is blocked too it
// stops dead on the nearest cell.
func StepPlayer(m *tilemap.Maze, p *entities.Player, in Input, dt float64) PlayerStep {
	step := PlayerStep{From: p.Pos}
	dist := p.Speed * dt
	cur := p.Pos
	res := motion.Result{Blocked: true}

	if in.Vertical != entities.NoVertical && in.Vertical != p.Heading.Vertical {
		h := entities.Heading{Vertical: in.Vertical}
		if p.Heading.Vertical != entities.NoVertical || motion.AtDecisionPoint(cur, p.Heading) {
			res = motion.AttemptMove(m, cur, h, dist)
			if !res.Blocked {
				p.Heading = h
				res.Pos.X = math.Round(res.Pos.X)
			}
		}
	}

	if res.Blocked && in.Horizontal != entities.NoHorizontal && in.Horizontal != p.Heading.Horizontal {
		h := entities.Heading{Horizontal: in.Horizontal}
		if p.Heading.Horizontal != entities.NoHorizontal || motion.AtDecisionPoint(cur, p.Heading) {
			res = motion.AttemptMove(m, cur, h, dist)
			if !res.Blocked {
				p.Heading = h
				res.Pos.Y = math.Round(res.Pos.Y)
			}
		}
	}

	if res.Blocked {
		res = motion.AttemptMove(m, cur, p.Heading, dist)
	}

	if res.Blocked {
		p.Heading = entities.HeadingNone
		p.Pos = cur.Round()
		step.Stopped = true
	} else {
		p.Pos = res.Pos
		step.Warped = res.Warped
		if !p.Heading.IsZero() {
			p.Facing = entities.FacingFor(p.Heading)
		}
	}
	step.Moved = p.Pos != step.From
	step.Facing = p.Facing
	return step
}
