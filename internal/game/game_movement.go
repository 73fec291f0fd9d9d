package game

import (
	"mazechase/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameInput is the keyboard state sampled once per frame.
type frameInput struct {
	Move sim.Input

	Typed     []rune
	Backspace bool
	Confirm   bool
	Cancel    bool

	Pause       bool
	Quit        bool
	Fullscreen  bool
	ToggleBoard bool
}

func readFrameInput() frameInput {
	return frameInput{
		Move: sim.CombineKeys(
			ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		),
		Typed:       ebiten.AppendInputChars(nil),
		Backspace:   inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Confirm:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter),
		Cancel:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Fullscreen:  inpututil.IsKeyJustPressed(ebiten.KeyF),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyQ),
		ToggleBoard: inpututil.IsKeyJustPressed(ebiten.KeyS),
	}
}
