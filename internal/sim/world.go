// Package sim is the per-tick simulation: the player controller, the ghost
// behavior machine and player/ghost collisions, driven by World.Tick.
package sim

import (
	"errors"
	"fmt"
	"log"

	"mazechase/internal/config"
	"mazechase/internal/entities"
	"mazechase/internal/tilemap"
)

var ErrNoMaze = errors.New("sim: nil maze")

// World owns the actors and advances them together.
type World struct {
	Maze   *tilemap.Maze
	Player *entities.Player
	Ghosts []*entities.Ghost
	Board  Scoreboard

	// Logger, when set, traces warps and multi-way ghost decisions.
	Logger *log.Logger

	tuning config.Tuning
	rng    Rand
}

// TickResult is everything a tick produced that the caller may react to.
type TickResult struct {
	Player     PlayerStep
	Ghosts     []GhostStep
	Collisions []Collision
}

// LoseLife reports whether a searching ghost caught the player.
func (r TickResult) LoseLife() bool {
	for _, c := range r.Collisions {
		if c.Outcome == OutcomeLoseLife {
			return true
		}
	}
	return false
}

// NewWorld spawns the player and the configured ghost roster.
func NewWorld(m *tilemap.Maze, t config.Tuning, rng Rand) (*World, error) {
	if m == nil {
		return nil, ErrNoMaze
	}
	if rng == nil {
		return nil, errors.New("sim: nil random source")
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	roster, err := t.Roster()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	w := &World{
		Maze:   m,
		Player: entities.NewPlayer(PlayerStart, t.PlayerSpeed),
		tuning: t,
		rng:    rng,
	}
	for _, spec := range roster {
		w.Ghosts = append(w.Ghosts, entities.NewGhost(spec))
	}
	return w, nil
}

func (w *World) Tuning() config.Tuning { return w.tuning }

// Tick advances the player, then every ghost, then resolves collisions.
// dt is clamped to the configured maximum frame delta.
func (w *World) Tick(dt float64, in Input) TickResult {
	if w.Player == nil {
		panic("sim: tick without a player")
	}
	if dt > w.tuning.MaxFrameDelta {
		dt = w.tuning.MaxFrameDelta
	}
	if dt <= 0 {
		return TickResult{}
	}

	res := TickResult{Ghosts: make([]GhostStep, len(w.Ghosts))}
	res.Player = StepPlayer(w.Maze, w.Player, in, dt)
	if res.Player.Warped {
		w.logf("player warped to (%.1f,%.1f)", w.Player.Pos.X, w.Player.Pos.Y)
	}

	for i, g := range w.Ghosts {
		step := StepGhost(w.Maze, g, w.Player.Pos, dt, w.rng, w.tuning)
		res.Ghosts[i] = step
		if step.Transitioned() {
			w.logf("ghost %s: %v -> %v", g.Name, step.From, step.To)
		}
		if step.Decided && step.Options > 1 {
			w.logf("ghost %s: %d options at (%.0f,%.0f), heading %v (random=%t)",
				g.Name, step.Options, g.Pos.X, g.Pos.Y, g.Heading, step.Random)
		}
	}

	res.Collisions = ResolveCollisions(w.Player, w.Ghosts, &w.Board)
	for _, c := range res.Collisions {
		if c.Outcome == OutcomeGhostEaten {
			w.logf("ghost %s eaten for %d", c.Ghost.Name, c.Points)
		}
	}
	return res
}

// Weaken reacts to a weakness token pickup: the kill chain restarts and
// every ghost out in the maze turns weakened for the configured duration.
// Ghosts already weakened get a fresh timer.
func (w *World) Weaken() {
	w.Board.ResetKills()
	for _, g := range w.Ghosts {
		if g.Position != entities.OutAndAbout {
			continue
		}
		timer := entities.NewTimer(w.tuning.WeakenedDuration)
		g.WeakenedTimer = &timer
		g.Speed = w.tuning.GhostWeakenedSpeed
		g.Body.Tint = WeakenedTint
		g.SetAction(entities.Weakened)
	}
}

// Reset puts every actor back on its spawn point. Used after a lost life
// and when a level starts. The kill chain is per life, so it restarts too.
func (w *World) Reset() {
	w.Player.Reset(PlayerStart)
	for _, g := range w.Ghosts {
		g.Reset()
	}
	w.Board.ResetKills()
}

func (w *World) logf(format string, args ...any) {
	if w.Logger != nil {
		w.Logger.Printf(format, args...)
	}
}
