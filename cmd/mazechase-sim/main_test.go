package main

import (
	"bytes"
	"strings"
	"testing"

	"mazechase/internal/config"
	"mazechase/internal/entities"
)

func TestRunIsDeterministic(t *testing.T) {
	a, err := run(1, 7, 1200, 20, config.Default(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := run(1, 7, 1200, 20, config.Default(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.score != b.score || a.decisions != b.decisions || a.livesLost != b.livesLost {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
}

func TestRunCountsGhostTicks(t *testing.T) {
	const ticks, ghosts = 600, 4
	s, err := run(1, 3, ticks, 20, config.Default(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	sum := 0
	for _, n := range s.ghostTicks {
		sum += n
	}
	if sum != ticks*ghosts {
		t.Fatalf("ghost ticks = %d, want %d", sum, ticks*ghosts)
	}
	// 10 seconds is long enough for the first ghost to leave the pen.
	if s.ghostTicks[entities.SearchingForPlayer] == 0 {
		t.Fatalf("no ghost ever searched: %v", s.ghostTicks)
	}
	tokenScore := s.pointsEaten*10 + s.weaknessEaten*50
	if s.score < tokenScore+s.ghostsEaten*100 {
		t.Fatalf("score %d below token score %d plus %d kills", s.score, tokenScore, s.ghostsEaten)
	}
	if s.ghostsEaten == 0 && s.score != tokenScore {
		t.Fatalf("score %d, want %d", s.score, tokenScore)
	}
}

func TestRunRejectsBadTuning(t *testing.T) {
	tuning := config.Default()
	tuning.Ghosts = nil
	if _, err := run(1, 1, 10, 20, tuning, nil); err == nil {
		t.Fatalf("expected error for empty roster")
	}
}

func TestPrintRunAndAggregate(t *testing.T) {
	s := runStats{
		runIndex:        2,
		seed:            9,
		ticks:           100,
		score:           120,
		decisions:       10,
		randomDecisions: 4,
		ghostTicks:      map[entities.ActionStatus]int{entities.Idle: 300, entities.SearchingForPlayer: 100},
	}
	var buf bytes.Buffer
	printRun(&buf, s)
	printAggregate(&buf, []runStats{s, s})
	out := buf.String()
	for _, want := range []string{
		"run 2 seed=9 ticks=100",
		"score=120",
		"idle=300 leaving-pen=0 searching=100",
		"mean_score=120.0",
		"random_decision_ratio=0.400",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRatio(t *testing.T) {
	if ratio(1, 0) != 0 {
		t.Fatalf("ratio with zero denominator should be 0")
	}
	if ratio(1, 4) != 0.25 {
		t.Fatalf("ratio(1,4) = %v", ratio(1, 4))
	}
}
