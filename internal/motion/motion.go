// Package motion holds the rules that let continuous positions travel
// through the discrete maze: wall collision with grid snapping, warp
// teleports, and the decision-point window for turning.
package motion

import (
	"math"

	"mazechase/internal/entities"
	"mazechase/internal/geom"
	"mazechase/internal/tilemap"
)

// TurnThreshold is the width of the decision-point window either side of a
// cell center.
const TurnThreshold = 0.1

var hitbox = geom.Vec2{X: 1, Y: 1}

// Result is the outcome of AttemptMove.
type Result struct {
	Pos     geom.Vec2
	Blocked bool
	Warped  bool
}

// AttemptMove advances pos by distance along h. The cell one step past the
// rounded target is probed: a wall (or the edge of the maze) blocks the move
// once the mover's unit hitbox touches it, and a warp cell teleports the
// mover to its paired coordinate. A blocked move returns the current
// position with the moving axis rounded to the grid. A zero heading stays
// put and is never blocked.
func AttemptMove(m *tilemap.Maze, pos geom.Vec2, h entities.Heading, distance float64) Result {
	if h.IsZero() {
		return Result{Pos: pos}
	}
	unit := h.Unit()
	target := pos.Add(unit.Scale(distance))
	probe := target.Round().Add(unit)
	col, row := int(probe.X), int(probe.Y)

	checkWall := false
	warped := false
	if m.InBounds(col, row) {
		cell := m.CellAt(col, row)
		switch cell.Terrain {
		case tilemap.TerrainWall:
			checkWall = true
		case tilemap.TerrainWarp:
			wc, wr, _ := cell.Warp()
			target = geom.Vec2{X: float64(wc), Y: float64(wr)}
			warped = true
		}
	} else {
		checkWall = true
	}

	if checkWall && geom.CheckCollision(geom.RectFromCenter(target, hitbox), geom.RectFromCenter(probe, hitbox)) {
		snapped := pos
		if h.Horizontal != entities.NoHorizontal {
			snapped.X = math.Round(snapped.X)
		} else if h.Vertical != entities.NoVertical {
			snapped.Y = math.Round(snapped.Y)
		}
		return Result{Pos: snapped, Blocked: true}
	}
	return Result{Pos: target, Warped: warped}
}

// AtDecisionPoint reports whether pos is close enough to a cell center, on
// the axis of travel, to turn into a side corridor. The window is one sided:
// moving up or left the offset from the center must be in [0, 0.1), moving
// down or right in [-0.1, 0). A mover is only offered the turn as it
// reaches the center, never before and never after passing it. When h is
// zero the vertical axis is checked with the full [-0.1, 0.1) window.
func AtDecisionPoint(pos geom.Vec2, h entities.Heading) bool {
	v := pos.Y
	if h.Horizontal != entities.NoHorizontal {
		v = pos.X
	}
	diff := v - math.Round(v)

	lo, hi := -TurnThreshold, TurnThreshold
	switch {
	case h.Vertical == entities.Up || h.Horizontal == entities.Left:
		lo = 0
	case h.Vertical == entities.Down || h.Horizontal == entities.Right:
		hi = 0
	}
	return diff >= lo && diff < hi
}

// AvailableDirections lists the headings that lead from the cell under pos
// into a non-wall cell, in Left, Right, Up, Down order. Turning back the
// way the mover came is left out unless it is the only way open.
func AvailableDirections(pos geom.Vec2, h entities.Heading, m *tilemap.Maze) []entities.Heading {
	cell := pos.Cell()
	if !m.InBounds(cell.Col, cell.Row) {
		return nil
	}
	reverse := h.Reverse()
	var dirs []entities.Heading
	reverseOpen := false
	for _, d := range entities.Cardinal {
		dx, dy := d.Delta()
		col, row := cell.Col+dx, cell.Row+dy
		if !m.InBounds(col, row) || m.IsWall(col, row) {
			continue
		}
		if !h.IsZero() && d == reverse {
			reverseOpen = true
			continue
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 && reverseOpen {
		dirs = append(dirs, reverse)
	}
	return dirs
}
