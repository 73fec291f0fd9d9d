package game

import (
	"log"
	"math"
	"math/rand"
	"time"

	"mazechase/internal/config"
	"mazechase/internal/geom"
	"mazechase/internal/leaderboard"
	"mazechase/internal/sim"
	"mazechase/internal/tilemap"
	"mazechase/internal/tokens"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	updatesPerSecond = 60
	hudHeight        = 20
	maxNameLen       = 12
)

// Options configure a Game. Zero values pick sensible defaults.
type Options struct {
	Tuning    config.Tuning
	DataDir   string
	SoundsDir string
	Seed      int64
	Scale     float64
	Logger    *log.Logger
	// Trace logs ghost decisions and warps every tick.
	Trace bool
}

type Game struct {
	layout geom.Layout
	world  *sim.World
	tokens *tokens.Field
	board  *leaderboard.Board
	audio  *AudioManager
	logger *log.Logger

	phase      Phase
	phaseTimer float64
	lives      int
	level      int

	playerName         string
	submitted          bool
	rank               int
	showingLeaderboard bool
	fullscreen         bool
	paused             bool
	quit               bool
	scale              float64
}

func New(opts Options) (*Game, error) {
	t := opts.Tuning
	if t.Ghosts == nil {
		t = config.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := tilemap.Default()
	w, err := sim.NewWorld(m, t, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	if opts.Trace {
		w.Logger = logger
	}

	dir := opts.DataDir
	if dir == "" {
		if dir, err = config.Dir(); err != nil {
			return nil, err
		}
	}
	board, err := leaderboard.Open(dir)
	if err != nil {
		// A broken leaderboard should not stop play; the next save replaces it.
		logger.Printf("leaderboard: %v", err)
		board = leaderboard.New(dir)
	}

	g := &Game{
		layout: geom.DefaultLayout,
		world:  w,
		tokens: tokens.NewField(m),
		board:  board,
		audio:  NewAudioManager(opts.SoundsDir),
		logger: logger,
		phase:  PhaseSplash,
		lives:  t.Lives,
		level:  1,
		scale:  opts.Scale,
	}
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g, nil
}

// FitScale picks a window scale that fills about 75% of a display of the
// given size.
func FitScale(displayW, displayH int) float64 {
	nw, nh := nativeSize()
	fit := 0.75
	s := math.Min(float64(displayW)*fit/float64(nw), float64(displayH)*fit/float64(nh))
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1.0
	}
	return s
}

func nativeSize() (int, int) {
	w, h := geom.DefaultLayout.ScreenSize()
	return w, h + hudHeight
}

func (g *Game) ScreenWidth() int {
	w, _ := nativeSize()
	return int(float64(w) * g.scale)
}

func (g *Game) ScreenHeight() int {
	_, h := nativeSize()
	return int(float64(h) * g.scale)
}

func (g *Game) Update() error {
	g.update(readFrameInput(), 1.0/updatesPerSecond)
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

// update is one frame of game logic, separated from ebiten's key polling.
func (g *Game) update(in frameInput, dt float64) {
	// Letters typed into the name prompt are not hotkeys.
	if g.phase == PhaseSplash {
		if in.Cancel {
			g.quit = true
			return
		}
		g.updateNameEntry(in)
		return
	}
	if in.Fullscreen {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if in.Quit {
		// The first Q only opens the board; play can still resume, so the
		// score is recorded when the game really ends.
		if g.showingLeaderboard || g.phase == PhaseGameOver {
			g.submitScore()
			g.quit = true
			return
		}
		g.showingLeaderboard = true
		return
	}
	if in.ToggleBoard {
		g.showingLeaderboard = !g.showingLeaderboard
	}
	if g.showingLeaderboard && g.phase != PhaseGameOver {
		return
	}

	switch g.phase {
	case PhaseGameOver:
		if in.Confirm {
			g.showingLeaderboard = false
			g.enterPhase(PhaseSplash)
		}
	default:
		if in.Pause && g.phase == PhaseGameplay {
			g.paused = !g.paused
		}
		if g.paused {
			return
		}
		g.updatePhase(in.Move, dt)
	}
}

func (g *Game) updateNameEntry(in frameInput) {
	for _, r := range in.Typed {
		if len([]rune(g.playerName)) >= maxNameLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' || r == '_' || r == '-' {
			g.playerName += string(r)
		}
	}
	if in.Backspace {
		rs := []rune(g.playerName)
		if len(rs) > 0 {
			g.playerName = string(rs[:len(rs)-1])
		}
	}
	if in.Confirm && len([]rune(g.playerName)) > 0 {
		g.newGame()
	}
}

func (g *Game) Score() int { return g.world.Board.Score }

func (g *Game) Phase() Phase { return g.phase }
