package main

import (
	"flag"
	"log"

	"mazechase/internal/config"
	"mazechase/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		configPath string
		soundsDir  string
		seed       int64
		trace      bool
	)
	flag.StringVar(&configPath, "config", "", "tuning file (YAML); defaults are used when empty")
	flag.StringVar(&soundsDir, "sounds", "assets/sounds", "directory holding the .wav cues")
	flag.Int64Var(&seed, "seed", 0, "RNG seed for ghost decisions (0 picks one from the clock)")
	flag.BoolVar(&trace, "trace", false, "log ghost decisions and warps")
	flag.Parse()

	tuning, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	sw, sh := ebiten.ScreenSizeInFullscreen()
	g, err := game.New(game.Options{
		Tuning:    tuning,
		SoundsDir: soundsDir,
		Seed:      seed,
		Scale:     game.FitScale(sw, sh),
		Trace:     trace,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Maze Chase")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
