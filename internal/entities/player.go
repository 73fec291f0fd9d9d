package entities

import "mazechase/internal/geom"

type Player struct {
	Pos     geom.Vec2
	Heading Heading
	Speed   float64
	Facing  Facing
}

func NewPlayer(start geom.Vec2, speed float64) *Player {
	return &Player{Pos: start, Speed: speed}
}

// Reset puts the player back on its start cell, standing still.
func (p *Player) Reset(start geom.Vec2) {
	p.Pos = start
	p.Heading = HeadingNone
	p.Facing = Facing{}
}
