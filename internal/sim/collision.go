package sim

import (
	"mazechase/internal/entities"
	"mazechase/internal/geom"
)

// Hitbox sizes in grid units, from 21x21 and 21x23 world-unit sprites.
var (
	PlayerHitbox = geom.DefaultLayout.GridSize(21, 21)
	GhostHitbox  = geom.DefaultLayout.GridSize(21, 23)
)

// Scoreboard is the score state shared between token pickups and ghost kills.
type Scoreboard struct {
	Score            int
	ConsecutiveKills int
}

func (b *Scoreboard) Add(points int) { b.Score += points }

// KillPoints counts a ghost kill and returns what it was worth: 100 times
// the number of kills since the last weakness pickup.
func (b *Scoreboard) KillPoints() int {
	b.ConsecutiveKills++
	pts := 100 * b.ConsecutiveKills
	b.Score += pts
	return pts
}

// ResetKills restarts the kill chain. Called on a weakness pickup.
func (b *Scoreboard) ResetKills() { b.ConsecutiveKills = 0 }

// Outcome is the effect of the player touching a ghost.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLoseLife
	OutcomeGhostEaten
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLoseLife:
		return "lose-life"
	case OutcomeGhostEaten:
		return "ghost-eaten"
	}
	return "unknown"
}

// Collision is one player/ghost overlap found by ResolveCollisions.
type Collision struct {
	Ghost   *entities.Ghost
	Outcome Outcome
	Points  int
}

// ResolveCollisions tests the player against every ghost and applies the
// outcome. Weakened ghosts are eaten and sent home, searching ghosts cost
// the player a life, and every other state is harmless.
func ResolveCollisions(p *entities.Player, ghosts []*entities.Ghost, board *Scoreboard) []Collision {
	player := geom.RectFromCenter(p.Pos, PlayerHitbox)

	var out []Collision
	for _, g := range ghosts {
		if !geom.CheckCollision(player, geom.RectFromCenter(g.Pos, GhostHitbox)) {
			continue
		}
		c := Collision{Ghost: g}
		switch g.Action {
		case entities.Weakened:
			c.Outcome = OutcomeGhostEaten
			c.Points = board.KillPoints()
			g.WeakenedTimer = nil
			g.Body.Visible = false
			g.SetAction(entities.RunningToPen)
		case entities.SearchingForPlayer:
			c.Outcome = OutcomeLoseLife
		}
		out = append(out, c)
	}
	return out
}
