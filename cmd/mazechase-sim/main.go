package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"mazechase/internal/config"
	"mazechase/internal/entities"
	"mazechase/internal/geom"
	"mazechase/internal/sim"
	"mazechase/internal/tilemap"
	"mazechase/internal/tokens"
)

// tickDelta is one 60 Hz frame.
const tickDelta = 1.0 / 60

var actions = []entities.ActionStatus{
	entities.Idle,
	entities.LeavingPen,
	entities.SearchingForPlayer,
	entities.Weakened,
	entities.RunningToPen,
	entities.GoingIntoPen,
}

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	score         int
	livesLost     int
	levelsCleared int
	pointsEaten   int
	weaknessEaten int
	ghostsEaten   int
	bestKillChain int

	warps           int
	decisions       int
	randomDecisions int
	transitions     int

	// ghostTicks counts ghost-ticks spent in each action.
	ghostTicks map[entities.ActionStatus]int
}

func main() {
	var (
		runs       int
		ticks      int
		seedBase   int64
		configPath string
		steer      int
		trace      bool
	)
	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run (60 ticks per second)")
	flag.Int64Var(&seedBase, "seed", 1, "RNG seed for run 1; run i uses seed+i-1")
	flag.StringVar(&configPath, "config", "", "tuning file (YAML)")
	flag.IntVar(&steer, "steer", 20, "ticks between autopilot direction changes")
	flag.BoolVar(&trace, "trace", false, "log every ghost transition and decision")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		os.Exit(2)
	}
	tuning, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	var logger *log.Logger
	if trace {
		logger = log.New(os.Stderr, "sim: ", 0)
	}

	fmt.Printf("=== Maze Chase Headless Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed=%d steer=%d\n\n", runs, ticks, seedBase, steer)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)
		stats, err := run(i+1, seed, ticks, steer, tuning, logger)
		if err != nil {
			log.Fatal(err)
		}
		all = append(all, stats)
		printRun(os.Stdout, stats)
	}
	printAggregate(os.Stdout, all)
}

// run plays one seeded game with an autopilot player. Lives are not
// limited: a caught player is reset and the run continues.
func run(runIndex int, seed int64, ticks, steer int, tuning config.Tuning, logger *log.Logger) (runStats, error) {
	rng := rand.New(rand.NewSource(seed))
	m := tilemap.Default()
	w, err := sim.NewWorld(m, tuning, rng)
	if err != nil {
		return runStats{}, fmt.Errorf("run %d: %w", runIndex, err)
	}
	w.Logger = logger
	field := tokens.NewField(m)
	pilot := sim.NewAutopilot(rng, steer)

	stats := runStats{
		runIndex:   runIndex,
		seed:       seed,
		ticks:      ticks,
		ghostTicks: make(map[entities.ActionStatus]int, len(actions)),
	}
	for i := 0; i < ticks; i++ {
		res := w.Tick(tickDelta, pilot.Next())
		stats.record(res)
		for _, g := range w.Ghosts {
			stats.ghostTicks[g.Action]++
		}
		if w.Board.ConsecutiveKills > stats.bestKillChain {
			stats.bestKillChain = w.Board.ConsecutiveKills
		}

		for _, p := range field.Collect(geom.RectFromCenter(w.Player.Pos, sim.PlayerHitbox)) {
			w.Board.Add(p.Value)
			if p.Kind == tilemap.RewardWeakness {
				stats.weaknessEaten++
				w.Weaken()
			} else {
				stats.pointsEaten++
			}
		}

		switch {
		case res.LoseLife():
			stats.livesLost++
			w.Reset()
		case field.PointsLeft() == 0:
			stats.levelsCleared++
			field.Rebuild()
			w.Reset()
		}
	}
	stats.score = w.Board.Score
	return stats, nil
}

func (s *runStats) record(res sim.TickResult) {
	if res.Player.Warped {
		s.warps++
	}
	for _, g := range res.Ghosts {
		if g.Warped {
			s.warps++
		}
		if g.Decided {
			s.decisions++
			if g.Random {
				s.randomDecisions++
			}
		}
		if g.Transitioned() {
			s.transitions++
		}
	}
	for _, c := range res.Collisions {
		if c.Outcome == sim.OutcomeGhostEaten {
			s.ghostsEaten++
		}
	}
}

func printRun(out io.Writer, s runStats) {
	fmt.Fprintf(out, "run %d seed=%d ticks=%d\n", s.runIndex, s.seed, s.ticks)
	fmt.Fprintf(out, "  score=%d lives_lost=%d levels=%d points=%d weakness=%d ghosts_eaten=%d best_chain=%d\n",
		s.score, s.livesLost, s.levelsCleared, s.pointsEaten, s.weaknessEaten, s.ghostsEaten, s.bestKillChain)
	fmt.Fprintf(out, "  decisions=%d random=%d transitions=%d warps=%d\n",
		s.decisions, s.randomDecisions, s.transitions, s.warps)
	fmt.Fprintf(out, "  ghost_ticks %s\n\n", formatGhostTicks(s.ghostTicks))
}

func formatGhostTicks(counts map[entities.ActionStatus]int) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s=%d", a, counts[a]))
	}
	return strings.Join(parts, " ")
}

func printAggregate(out io.Writer, all []runStats) {
	if len(all) == 0 {
		return
	}
	var score, lives, eaten, decisions, random int
	total := make(map[entities.ActionStatus]int, len(actions))
	for _, s := range all {
		score += s.score
		lives += s.livesLost
		eaten += s.ghostsEaten
		decisions += s.decisions
		random += s.randomDecisions
		for a, n := range s.ghostTicks {
			total[a] += n
		}
	}
	n := float64(len(all))
	fmt.Fprintf(out, "=== Aggregate (%d runs) ===\n", len(all))
	fmt.Fprintf(out, "  mean_score=%.1f mean_lives_lost=%.2f mean_ghosts_eaten=%.2f\n",
		float64(score)/n, float64(lives)/n, float64(eaten)/n)
	fmt.Fprintf(out, "  random_decision_ratio=%.3f\n", ratio(random, decisions))
	fmt.Fprintf(out, "  ghost_ticks %s\n", formatGhostTicks(total))
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
