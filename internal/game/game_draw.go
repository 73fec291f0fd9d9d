package game

import (
	"fmt"
	"image/color"
	"math"

	"mazechase/internal/entities"
	"mazechase/internal/geom"
	"mazechase/internal/tokens"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 advances 7 pixels per glyph.
const glyphWidth = 7

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	tokenColor  = color.RGBA{R: 255, G: 184, B: 151, A: 255}
	titleColor  = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	hintColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	pupilColor  = color.RGBA{R: 20, G: 20, B: 120, A: 255}
	weakColor   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Draw at native resolution, then scale up.
	nativeW, nativeH := nativeSize()
	off := ebiten.NewImage(nativeW, nativeH)

	g.drawMaze(off)
	g.drawTokens(off)
	g.drawPlayer(off)
	g.drawGhosts(off)

	text.Draw(off, g.hudText(), basicfont.Face7x13, 4, 14, color.White)
	if left := g.weakenedLeft(); left > 0 {
		s := fmt.Sprintf("Weakened: %.1fs", left)
		text.Draw(off, s, basicfont.Face7x13, nativeW-len(s)*glyphWidth-4, nativeH-4, weakColor)
	}
	g.drawOverlay(off, nativeW, nativeH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

// toScreen maps a grid position to native pixels below the HUD.
func (g *Game) toScreen(p geom.Vec2) (float32, float32) {
	s := g.layout.GridToScreen(p)
	return float32(s.X), float32(s.Y + hudHeight)
}

func (g *Game) drawMaze(img *ebiten.Image) {
	m := g.world.Maze
	size := float32(g.layout.CellSize)
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			if !m.IsWall(col, row) {
				continue
			}
			x, y := g.toScreen(geom.Vec2{X: float64(col), Y: float64(row)})
			vector.DrawFilledRect(img, x-size/2, y-size/2, size, size, wallColor, false)
		}
	}
}

func (g *Game) drawTokens(img *ebiten.Image) {
	g.tokens.Each(func(pos geom.Vec2, tok tokens.Token) {
		x, y := g.toScreen(pos)
		vector.DrawFilledCircle(img, x, y, tokenRadius(g.layout, tok), tokenColor, true)
	})
}

// tokenRadius is half the token's world-space width.
func tokenRadius(l geom.Layout, tok tokens.Token) float32 {
	return float32(tok.Size.X * l.CellSize / 2)
}

func (g *Game) drawPlayer(img *ebiten.Image) {
	p := g.world.Player
	x, y := g.toScreen(p.Pos)
	r := float32(g.layout.CellSize/2 + 2)
	vector.DrawFilledCircle(img, x, y, r, playerColor, true)
	if p.Heading.IsZero() {
		return
	}
	dx, dy := mouthOffset(p.Facing, float64(r))
	vector.DrawFilledCircle(img, x+float32(dx), y+float32(dy), r/2, color.Black, true)
}

// mouthOffset points from the player's center toward where it faces, in
// y-down screen pixels.
func mouthOffset(f entities.Facing, r float64) (float64, float64) {
	rad := f.Degrees * math.Pi / 180
	return math.Cos(rad) * r * 0.7, -math.Sin(rad) * r * 0.7
}

func (g *Game) drawGhosts(img *ebiten.Image) {
	r := float32(g.layout.CellSize/2 + 2)
	for _, gh := range g.world.Ghosts {
		x, y := g.toScreen(gh.Pos)
		if gh.Body.Visible {
			vector.DrawFilledCircle(img, x, y-r/4, r, gh.Body.Tint, true)
			vector.DrawFilledRect(img, x-r, y-r/4, 2*r, r+r/4, gh.Body.Tint, true)
		}
		if !gh.Eyes.Visible {
			continue
		}
		px, py := pupilOffset(gh.Eyes.Frame, float64(r)/5)
		for _, side := range []float32{-1, 1} {
			ex := x + side*r/2.5
			ey := y - r/3
			vector.DrawFilledCircle(img, ex, ey, r/3.5, color.White, true)
			vector.DrawFilledCircle(img, ex+float32(px), ey+float32(py), r/7, pupilColor, true)
		}
	}
}

// pupilOffset maps an eyes frame (right, left, up, down, none) to a pupil
// shift in screen pixels.
func pupilOffset(frame int, d float64) (float64, float64) {
	switch frame {
	case 0:
		return d, 0
	case 1:
		return -d, 0
	case 2:
		return 0, -d
	case 3:
		return 0, d
	}
	return 0, 0
}

// weakenedLeft is the longest time any ghost stays weakened, in seconds.
func (g *Game) weakenedLeft() float64 {
	var left float64
	for _, gh := range g.world.Ghosts {
		if gh.Action == entities.Weakened && gh.WeakenedTimer != nil {
			left = math.Max(left, gh.WeakenedTimer.Remaining())
		}
	}
	return left
}

func (g *Game) hudText() string {
	name := g.playerName
	if name == "" {
		name = "Player"
	}
	best := 0
	if rec, ok := g.board.Best(); ok {
		best = rec.Score
	}
	if s := g.Score(); s > best {
		best = s
	}
	return fmt.Sprintf("%s  Score: %d  Best: %d  Lives: %d  Level: %d", name, g.Score(), best, g.lives, g.level)
}

func (g *Game) drawOverlay(img *ebiten.Image, w, h int) {
	if g.showingLeaderboard {
		g.drawLeaderboard(img, w, h)
		return
	}
	switch g.phase {
	case PhaseSplash:
		drawCentered(img, "MAZE CHASE", w, h/2-30, titleColor)
		drawCentered(img, "Enter name: "+g.playerName+"_", w, h/2, color.White)
		drawCentered(img, "Enter to start, Esc to quit", w, h-8, hintColor)
	case PhaseGameStart:
		drawCentered(img, "READY!", w, h/2+hudHeight+30, titleColor)
	case PhaseGameOver:
		drawCentered(img, "GAME OVER", w, h/2-14, titleColor)
		drawCentered(img, g.gameOverMessage(), w, h/2+4, color.White)
		drawCentered(img, "Enter to continue, Q to quit", w, h-8, hintColor)
	default:
		if g.paused {
			drawCentered(img, "PAUSED", w, h/2+hudHeight+30, color.White)
		}
	}
}

func (g *Game) gameOverMessage() string {
	if g.rank == 1 {
		return "New highscore!"
	}
	if g.rank > 1 {
		return fmt.Sprintf("You placed #%d", g.rank)
	}
	return "Better luck next time!"
}

func (g *Game) drawLeaderboard(img *ebiten.Image, w, h int) {
	y := h/2 - 80
	drawCentered(img, "High Scores", w, y, titleColor)
	y += 18
	for i, rec := range g.board.Entries() {
		drawCentered(img, leaderboardLine(i+1, rec.Name, rec.Score), w, y, color.White)
		y += 14
	}
	drawCentered(img, "S to close, Q to exit", w, h-8, hintColor)
}

func leaderboardLine(rank int, name string, score int) string {
	return fmt.Sprintf("%2d. %-12s  %6d", rank, name, score)
}

func drawCentered(img *ebiten.Image, s string, w, y int, clr color.Color) {
	x := (w - len(s)*glyphWidth) / 2
	text.Draw(img, s, basicfont.Face7x13, x, y, clr)
}
