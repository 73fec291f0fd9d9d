package game

import (
	"mazechase/internal/leaderboard"
	"mazechase/internal/sim"
)

// Phase is the top-level game state.
type Phase int

const (
	// PhaseSplash waits for the player's name.
	PhaseSplash Phase = iota
	// PhaseGameStart holds everything still for a short delay.
	PhaseGameStart
	PhaseGameplay
	// PhaseLoseLife plays out a caught player before the reset.
	PhaseLoseLife
	PhaseLevelComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseGameStart:
		return "game-start"
	case PhaseGameplay:
		return "gameplay"
	case PhaseLoseLife:
		return "lose-life"
	case PhaseLevelComplete:
		return "level-complete"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

func (g *Game) enterPhase(p Phase) {
	g.phase = p
	g.phaseTimer = 0
	g.paused = false
}

// newGame starts level 1 with a fresh score and the full set of lives.
func (g *Game) newGame() {
	g.world.Board = sim.Scoreboard{}
	g.lives = g.world.Tuning().Lives
	g.level = 1
	g.submitted = false
	g.rank = 0
	g.showingLeaderboard = false
	g.tokens.Rebuild()
	g.world.Reset()
	g.enterPhase(PhaseGameStart)
}

func (g *Game) updatePhase(move sim.Input, dt float64) {
	t := g.world.Tuning()
	g.phaseTimer += dt

	switch g.phase {
	case PhaseGameStart:
		if g.phaseTimer >= t.StartDelay {
			g.enterPhase(PhaseGameplay)
		}

	case PhaseGameplay:
		res := g.world.Tick(dt, move)
		g.collectTokens()
		g.handleGhostCollisions(res)
		switch {
		case res.LoseLife():
			g.enterPhase(PhaseLoseLife)
		case g.tokens.PointsLeft() == 0:
			g.enterPhase(PhaseLevelComplete)
		}

	case PhaseLoseLife:
		if g.phaseTimer < t.LoseLifeDelay {
			return
		}
		g.lives--
		if g.lives <= 0 {
			g.submitScore()
			g.enterPhase(PhaseGameOver)
			return
		}
		g.world.Reset()
		g.enterPhase(PhaseGameStart)

	case PhaseLevelComplete:
		g.level++
		g.logger.Printf("level %d complete, score %d", g.level-1, g.Score())
		g.tokens.Rebuild()
		g.world.Reset()
		g.enterPhase(PhaseGameStart)
	}
}

// submitScore records the current score once per game if it makes the
// leaderboard.
func (g *Game) submitScore() {
	if g.submitted || g.Score() <= 0 {
		return
	}
	g.submitted = true
	rank, err := g.board.Submit(leaderboard.Record{Name: g.playerName, Score: g.Score()})
	if err != nil {
		g.logger.Printf("leaderboard: %v", err)
		return
	}
	g.rank = rank
}
