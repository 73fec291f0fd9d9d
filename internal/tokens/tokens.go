// Package tokens keeps the collectible tokens of a level as entities in an
// ECS world. Tokens are spawned from the maze's reward sites, removed when
// the player's hitbox touches them, and counted to detect a cleared level.
package tokens

import (
	"github.com/mlange-42/ark/ecs"

	"mazechase/internal/geom"
	"mazechase/internal/tilemap"
)

// Points awarded per token kind.
const (
	PointValue    = 10
	WeaknessValue = 50
)

// Token hitboxes in grid units, from 5x5 and 15x15 world-unit sprites.
var (
	PointSize    = geom.DefaultLayout.GridSize(5, 5)
	WeaknessSize = geom.DefaultLayout.GridSize(15, 15)
)

// Position is a token's cell center in grid space.
type Position struct {
	X, Y float64
}

// Token is what a pickup is worth and how large it is.
type Token struct {
	Kind  tilemap.Reward
	Value int
	Size  geom.Vec2
}

// Pickup is one collected token.
type Pickup struct {
	Kind  tilemap.Reward
	Value int
	Cell  geom.Point
}

// Field is the set of live tokens for the current level.
type Field struct {
	world  *ecs.World
	spawn  *ecs.Map2[Position, Token]
	filter *ecs.Filter2[Position, Token]

	sites  []tilemap.RewardSite
	points int
	weak   int
}

func NewField(m *tilemap.Maze) *Field {
	w := ecs.NewWorld(512)
	f := &Field{
		world:  w,
		spawn:  ecs.NewMap2[Position, Token](w),
		filter: ecs.NewFilter2[Position, Token](w),
		sites:  m.Rewards(),
	}
	f.populate()
	return f
}

func (f *Field) populate() {
	for _, s := range f.sites {
		tok := Token{Kind: s.Reward}
		switch s.Reward {
		case tilemap.RewardPoint:
			tok.Value, tok.Size = PointValue, PointSize
			f.points++
		case tilemap.RewardWeakness:
			tok.Value, tok.Size = WeaknessValue, WeaknessSize
			f.weak++
		default:
			continue
		}
		f.spawn.NewEntity(&Position{X: float64(s.Col), Y: float64(s.Row)}, &tok)
	}
}

// Rebuild removes whatever is left and respawns every token of the maze.
func (f *Field) Rebuild() {
	var live []ecs.Entity
	q := f.filter.Query()
	for q.Next() {
		live = append(live, q.Entity())
	}
	for _, e := range live {
		f.world.RemoveEntity(e)
	}
	f.points, f.weak = 0, 0
	f.populate()
}

// Collect removes every token overlapping hitbox and returns them.
func (f *Field) Collect(hitbox geom.Rect) []Pickup {
	var (
		hits    []ecs.Entity
		pickups []Pickup
	)
	q := f.filter.Query()
	for q.Next() {
		pos, tok := q.Get()
		center := geom.Vec2{X: pos.X, Y: pos.Y}
		if !geom.CheckCollision(geom.RectFromCenter(center, tok.Size), hitbox) {
			continue
		}
		hits = append(hits, q.Entity())
		pickups = append(pickups, Pickup{Kind: tok.Kind, Value: tok.Value, Cell: center.Cell()})
	}
	for i, e := range hits {
		f.world.RemoveEntity(e)
		if pickups[i].Kind == tilemap.RewardPoint {
			f.points--
		} else {
			f.weak--
		}
	}
	return pickups
}

// PointsLeft is the number of point tokens still in the maze. The level is
// complete when it reaches zero.
func (f *Field) PointsLeft() int { return f.points }

// WeaknessLeft is the number of weakness tokens still in the maze.
func (f *Field) WeaknessLeft() int { return f.weak }

// Each calls fn for every live token.
func (f *Field) Each(fn func(pos geom.Vec2, tok Token)) {
	q := f.filter.Query()
	for q.Next() {
		pos, tok := q.Get()
		fn(geom.Vec2{X: pos.X, Y: pos.Y}, *tok)
	}
}
