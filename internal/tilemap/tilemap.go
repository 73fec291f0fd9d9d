// Package tilemap is the static maze: a fixed grid of wall, path and warp
// cells, each optionally carrying a reward marker. The grid never changes
// after construction; eaten rewards are tracked by the token field.
package tilemap

import (
	"errors"
	"fmt"
)

const (
	Width  = 26
	Height = 29
)

type Terrain int

const (
	TerrainWall Terrain = iota
	TerrainPath
	TerrainWarp
)

func (t Terrain) String() string {
	switch t {
	case TerrainWall:
		return "wall"
	case TerrainPath:
		return "path"
	case TerrainWarp:
		return "warp"
	default:
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
}

type Reward int

const (
	RewardNone Reward = iota
	RewardPoint
	RewardWeakness
)

// Cell is one maze square. WarpCol/WarpRow are only meaningful for
// TerrainWarp cells and hold the coordinate an entering actor lands on.
type Cell struct {
	Terrain Terrain
	Reward  Reward
	WarpCol int
	WarpRow int
}

// Warp returns the teleport target of a warp cell.
func (c Cell) Warp() (col, row int, ok bool) {
	if c.Terrain != TerrainWarp {
		return 0, 0, false
	}
	return c.WarpCol, c.WarpRow, true
}

// RewardSite is a cell that starts a level holding a reward.
type RewardSite struct {
	Col, Row int
	Reward   Reward
}

type Maze struct {
	width  int
	height int
	cells  [][]Cell
}

var (
	ErrEmptyLayout  = errors.New("tilemap: empty layout")
	ErrRaggedLayout = errors.New("tilemap: rows differ in width")
	ErrUnpairedWarp = errors.New("tilemap: warp cells must pair up on a row")
)

// Default returns the compiled-in 26x29 maze.
func Default() *Maze {
	m, err := Parse(defaultMaze)
	if err != nil {
		panic(fmt.Sprintf("tilemap: built-in layout: %v", err))
	}
	return m
}

// Parse builds a maze from a symbol table (see maze_layout.go for the
// legend). Each row may hold at most one '<' and one '>', and they must
// appear together; they warp onto each other.
func Parse(lines []string) (*Maze, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h := len(lines)
	w := len(lines[0])
	cells := make([][]Cell, h)
	for y := 0; y < h; y++ {
		if len(lines[y]) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, y, len(lines[y]), w)
		}
		cells[y] = make([]Cell, w)
		west, east := -1, -1
		for x := 0; x < w; x++ {
			switch ch := lines[y][x]; ch {
			case '#':
				cells[y][x] = Cell{Terrain: TerrainWall}
			case '.':
				cells[y][x] = Cell{Terrain: TerrainPath, Reward: RewardPoint}
			case 'o':
				cells[y][x] = Cell{Terrain: TerrainPath, Reward: RewardWeakness}
			case ' ':
				cells[y][x] = Cell{Terrain: TerrainPath}
			case '<', '>':
				end := &west
				if ch == '>' {
					end = &east
				}
				if *end >= 0 {
					return nil, fmt.Errorf("%w: row %d has two %q", ErrUnpairedWarp, y, ch)
				}
				*end = x
				cells[y][x] = Cell{Terrain: TerrainWarp}
			default:
				return nil, fmt.Errorf("tilemap: unknown symbol %q at (%d,%d)", ch, x, y)
			}
		}
		if (west < 0) != (east < 0) {
			return nil, fmt.Errorf("%w: row %d", ErrUnpairedWarp, y)
		}
		if west >= 0 {
			cells[y][west].WarpCol, cells[y][west].WarpRow = east, y
			cells[y][east].WarpCol, cells[y][east].WarpRow = west, y
		}
	}
	return &Maze{width: w, height: h, cells: cells}, nil
}

func (m *Maze) Width() int  { return m.width }
func (m *Maze) Height() int { return m.height }

func (m *Maze) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// CellAt returns the cell at (col, row). Callers must bounds-check first;
// an out-of-range query is a layout or caller bug and panics.
func (m *Maze) CellAt(col, row int) Cell {
	if !m.InBounds(col, row) {
		panic(fmt.Sprintf("tilemap: cell (%d,%d) outside %dx%d maze", col, row, m.width, m.height))
	}
	return m.cells[row][col]
}

// IsWall has the same precondition as CellAt.
func (m *Maze) IsWall(col, row int) bool {
	return m.CellAt(col, row).Terrain == TerrainWall
}

// Rewards lists every cell holding a reward, row by row.
func (m *Maze) Rewards() []RewardSite {
	var sites []RewardSite
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if r := m.cells[y][x].Reward; r != RewardNone {
				sites = append(sites, RewardSite{Col: x, Row: y, Reward: r})
			}
		}
	}
	return sites
}
