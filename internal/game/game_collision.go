package game

import (
	"mazechase/internal/geom"
	"mazechase/internal/sim"
	"mazechase/internal/tilemap"
)

// collectTokens eats every token under the player's hitbox.
func (g *Game) collectTokens() {
	hitbox := geom.RectFromCenter(g.world.Player.Pos, sim.PlayerHitbox)
	for _, p := range g.tokens.Collect(hitbox) {
		g.world.Board.Add(p.Value)
		if p.Kind == tilemap.RewardWeakness {
			g.world.Weaken()
			if g.audio != nil {
				g.audio.PlayWeakness()
			}
			continue
		}
		if g.audio != nil {
			g.audio.PlayPoint()
		}
	}
}

func (g *Game) handleGhostCollisions(res sim.TickResult) {
	for _, c := range res.Collisions {
		switch c.Outcome {
		case sim.OutcomeGhostEaten:
			if g.audio != nil {
				g.audio.PlayGhostEaten()
			}
		case sim.OutcomeLoseLife:
			if g.audio != nil {
				g.audio.PlayDeath()
			}
			return
		}
	}
}
