package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazechase/internal/config"
	"mazechase/internal/entities"
	"mazechase/internal/geom"
	"mazechase/internal/tilemap"
)

// scripted hands out queued values, then falls back to "never random" and
// index zero.
type scripted struct {
	floats []float64
	ints   []int
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.999
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func newGhost(action entities.ActionStatus, pos geom.Vec2, h entities.Heading) *entities.Ghost {
	g := entities.NewGhost(entities.GhostSpec{Name: "Test", PenDelay: 1, Speed: 4, Start: geom.Vec2{X: 12.5, Y: 13}})
	g.SetAction(action)
	g.Pos = pos
	g.Heading = h
	return g
}

func TestIdleLeavesPenAfterDelay(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.Idle, geom.Vec2{X: 12.5, Y: 13}, entities.HeadingLeft)

	step := StepGhost(m, g, PlayerStart, 0.5, &scripted{}, tun)
	assert.Equal(t, entities.Idle, g.Action)
	assert.False(t, step.Transitioned())

	step = StepGhost(m, g, PlayerStart, 0.5, &scripted{}, tun)
	assert.Equal(t, entities.LeavingPen, g.Action)
	assert.Equal(t, entities.InPen, g.Position)
	assert.True(t, step.Transitioned())
}

func TestIdleBouncesInsidePen(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.Idle, geom.Vec2{X: 10.05, Y: 13}, entities.HeadingLeft)

	StepGhost(m, g, PlayerStart, 0.05, &scripted{}, tun)
	assert.InDelta(t, 9.95, g.Pos.X, 1e-9)
	assert.Equal(t, entities.HeadingRight, g.Heading)

	g.Pos.X = 14.95
	StepGhost(m, g, PlayerStart, 0.05, &scripted{}, tun)
	assert.Equal(t, entities.HeadingLeft, g.Heading)
}

func TestLeavingPenLinesUpWithDoor(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.LeavingPen, geom.Vec2{X: 11, Y: 13}, entities.HeadingLeft)

	StepGhost(m, g, PlayerStart, 0.05, &scripted{}, tun)
	assert.InDelta(t, 11.1, g.Pos.X, 1e-9)
	assert.Equal(t, entities.HeadingRight, g.Heading)

	g.Pos = geom.Vec2{X: 12.55, Y: 13}
	StepGhost(m, g, PlayerStart, 0.05, &scripted{}, tun)
	assert.Equal(t, 12.5, g.Pos.X)
	assert.InDelta(t, 12.9, g.Pos.Y, 1e-9)
	assert.Equal(t, entities.HeadingUp, g.Heading)
}

func TestLeavingPenReachesExit(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()

	for _, tc := range []struct {
		pick int
		want entities.Heading
	}{{0, entities.HeadingLeft}, {1, entities.HeadingRight}} {
		g := newGhost(entities.LeavingPen, geom.Vec2{X: 12.5, Y: 10.05}, entities.HeadingUp)
		step := StepGhost(m, g, PlayerStart, 0.05, &scripted{ints: []int{tc.pick}}, tun)

		require.Equal(t, entities.SearchingForPlayer, g.Action)
		assert.Equal(t, entities.OutAndAbout, g.Position)
		assert.Equal(t, PenExit, g.Pos)
		assert.Equal(t, entities.NoVertical, g.Heading.Vertical)
		assert.Equal(t, tc.want, g.Heading)
		assert.True(t, step.Transitioned())
	}
}

func TestChooseDirectionToward(t *testing.T) {
	all := entities.Cardinal[:]
	tests := []struct {
		name      string
		target    geom.Vec2
		available []entities.Heading
		rng       *scripted
		want      entities.Heading
	}{
		{"far right", geom.Vec2{X: 20, Y: 6}, all, &scripted{}, entities.HeadingRight},
		{"far up", geom.Vec2{X: 6, Y: -10}, all, &scripted{}, entities.HeadingUp},
		{"tie prefers horizontal", geom.Vec2{X: 2, Y: 9}, all, &scripted{}, entities.HeadingLeft},
		{"falls back to second axis", geom.Vec2{X: 20, Y: 8},
			[]entities.Heading{entities.HeadingLeft, entities.HeadingDown}, &scripted{}, entities.HeadingDown},
		{"random when neither fits", geom.Vec2{X: 20, Y: 8},
			[]entities.Heading{entities.HeadingLeft, entities.HeadingUp}, &scripted{ints: []int{1}}, entities.HeadingUp},
		{"single option", geom.Vec2{X: 20, Y: 8},
			[]entities.Heading{entities.HeadingLeft}, &scripted{ints: []int{1}}, entities.HeadingLeft},
		{"nothing open", geom.Vec2{X: 20, Y: 8}, nil, &scripted{}, entities.HeadingNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ChooseDirectionToward(tc.target, geom.Vec2{X: 5, Y: 6}, tc.available, tc.rng)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearchingTurnsTowardPlayer(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.SearchingForPlayer, geom.Vec2{X: 4.95, Y: 4}, entities.HeadingRight)

	step := StepGhost(m, g, geom.Vec2{X: 5, Y: 28}, frame, &scripted{floats: []float64{0.95}}, tun)

	require.True(t, step.Decided)
	assert.False(t, step.Random)
	assert.Equal(t, 3, step.Options)
	assert.Equal(t, entities.HeadingDown, g.Heading)
	assert.Equal(t, 5.0, g.Pos.X)
	assert.Greater(t, g.Pos.Y, 4.0)
}

func TestSearchingRandomChoice(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.SearchingForPlayer, geom.Vec2{X: 4.95, Y: 4}, entities.HeadingRight)

	// Distance 24 gives a 0.8 chance; 0.5 rolls random and index 1 is Up.
	step := StepGhost(m, g, geom.Vec2{X: 5, Y: 28}, frame, &scripted{floats: []float64{0.5}, ints: []int{1}}, tun)

	assert.True(t, step.Random)
	assert.Equal(t, entities.HeadingUp, g.Heading)
}

func TestRandomChoiceChance(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	// At (5,4) heading Right the options are Right, Up, Down; a random pick
	// takes the scripted index.
	tests := []struct {
		name       string
		action     entities.ActionStatus
		player     geom.Vec2
		roll       float64
		pick       int
		wantRandom bool
		want       entities.Heading
	}{
		{"searching far is capped at 0.9", entities.SearchingForPlayer, geom.Vec2{X: 5, Y: 40}, 0.91, 1, false, entities.HeadingDown},
		{"searching far below cap", entities.SearchingForPlayer, geom.Vec2{X: 5, Y: 40}, 0.89, 1, true, entities.HeadingUp},
		{"weakened under 0.2", entities.Weakened, geom.Vec2{X: 5, Y: 10}, 0.19, 2, true, entities.HeadingDown},
		{"weakened over 0.2", entities.Weakened, geom.Vec2{X: 5, Y: 10}, 0.21, 2, false, entities.HeadingUp},
		{"running home never random", entities.RunningToPen, PlayerStart, 0.0, 1, false, entities.HeadingRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGhost(tc.action, geom.Vec2{X: 4.95, Y: 4}, entities.HeadingRight)
			if tc.action == entities.Weakened {
				timer := entities.NewTimer(tun.WeakenedDuration)
				g.WeakenedTimer = &timer
			}

			step := StepGhost(m, g, tc.player, frame, &scripted{floats: []float64{tc.roll}, ints: []int{tc.pick}}, tun)

			require.True(t, step.Decided)
			assert.Equal(t, 3, step.Options)
			assert.Equal(t, tc.wantRandom, step.Random)
			assert.Equal(t, tc.want, g.Heading)
		})
	}
}

func TestDecisionOncePerCell(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.SearchingForPlayer, geom.Vec2{X: 4.92, Y: 4}, entities.HeadingRight)
	g.Speed = 0.1
	player := geom.Vec2{X: 20, Y: 4}

	step := StepGhost(m, g, player, 0.05, &scripted{}, tun)
	require.True(t, step.Decided)
	require.Equal(t, entities.HeadingRight, g.Heading)
	require.True(t, g.Pos.X < 5)

	step = StepGhost(m, g, player, 0.05, &scripted{}, tun)
	assert.False(t, step.Decided)
	cell, ok := g.LastDecision()
	assert.True(t, ok)
	assert.Equal(t, geom.Point{Col: 5, Row: 4}, cell)
}

func TestBlockedGhostRedecides(t *testing.T) {
	m := parse(t,
		"#####",
		"#...#",
		"#####",
	)
	tun := config.Default()
	g := newGhost(entities.SearchingForPlayer, geom.Vec2{X: 3, Y: 1}, entities.HeadingRight)
	g.MarkDecision(geom.Point{Col: 3, Row: 1})

	step := StepGhost(m, g, geom.Vec2{X: 10, Y: 1}, frame, &scripted{}, tun)

	assert.True(t, step.Decided)
	assert.Equal(t, entities.HeadingLeft, g.Heading)
	assert.Equal(t, geom.Vec2{X: 3, Y: 1}, g.Pos)
}

func TestWeakenedFleesFromPlayer(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.Weakened, geom.Vec2{X: 4.95, Y: 4}, entities.HeadingRight)
	timer := entities.NewTimer(tun.WeakenedDuration)
	g.WeakenedTimer = &timer

	StepGhost(m, g, geom.Vec2{X: 5, Y: 10}, frame, &scripted{floats: []float64{0.5}}, tun)

	assert.Equal(t, entities.HeadingUp, g.Heading)
	assert.Equal(t, tun.GhostWeakenedSpeed, g.Speed)
	assert.InDelta(t, frame, g.WeakenedTimer.Elapsed, 1e-12)
}

func TestWeakenedExpires(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.Weakened, geom.Vec2{X: 8, Y: 4}, entities.HeadingRight)
	g.Speed = tun.GhostWeakenedSpeed
	g.Body.Tint = WeakenedTint
	timer := entities.NewTimer(0.1)
	g.WeakenedTimer = &timer

	StepGhost(m, g, PlayerStart, 0.05, &scripted{}, tun)
	require.Equal(t, entities.Weakened, g.Action)

	step := StepGhost(m, g, PlayerStart, 0.05, &scripted{}, tun)
	assert.Equal(t, entities.SearchingForPlayer, g.Action)
	assert.Nil(t, g.WeakenedTimer)
	assert.Equal(t, g.BaseSpeed, g.Speed)
	assert.Equal(t, g.BaseColor, g.Body.Tint)
	assert.Equal(t, entities.Weakened, step.From)
}

func TestRunningToPenArrives(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.RunningToPen, geom.Vec2{X: 12.7, Y: 10}, entities.HeadingLeft)

	StepGhost(m, g, PlayerStart, 0.01, &scripted{}, tun)

	assert.Equal(t, entities.GoingIntoPen, g.Action)
	assert.Equal(t, entities.ReturningToPen, g.Position)
	assert.Equal(t, PenExit, g.Pos)
	assert.Equal(t, entities.HeadingDown, g.Heading)
}

func TestGoingIntoPenSettles(t *testing.T) {
	m := tilemap.Default()
	tun := config.Default()
	g := newGhost(entities.GoingIntoPen, geom.Vec2{X: 12.5, Y: 12.7}, entities.HeadingDown)
	g.Body.Visible = false

	StepGhost(m, g, PlayerStart, 0.05, &scripted{}, tun)
	require.Equal(t, entities.GoingIntoPen, g.Action)
	assert.InDelta(t, 12.8, g.Pos.Y, 1e-9)

	for i := 0; i < 2; i++ {
		StepGhost(m, g, PlayerStart, 0.05, &scripted{ints: []int{1}}, tun)
	}
	assert.Equal(t, entities.Idle, g.Action)
	assert.Equal(t, entities.InPen, g.Position)
	assert.Equal(t, PenCenter, g.Pos)
	assert.True(t, g.Body.Visible)
	assert.Equal(t, tun.ReturnPenDelay, g.TimeInPen.Duration)
	assert.Zero(t, g.TimeInPen.Elapsed)
	assert.Equal(t, entities.NoVertical, g.Heading.Vertical)
	assert.NotEqual(t, entities.NoHorizontal, g.Heading.Horizontal)
}
