package entities

import (
	"testing"

	"mazechase/internal/geom"
)

func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Heading
		wantDX int
		wantDY int
	}{
		{name: "none", dir: HeadingNone, wantDX: 0, wantDY: 0},
		{name: "up", dir: HeadingUp, wantDX: 0, wantDY: -1},
		{name: "down", dir: HeadingDown, wantDX: 0, wantDY: 1},
		{name: "left", dir: HeadingLeft, wantDX: -1, wantDY: 0},
		{name: "right", dir: HeadingRight, wantDX: 1, wantDY: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("%v.Delta() = (%d,%d), want (%d,%d)", tc.dir, dx, dy, tc.wantDX, tc.wantDY)
			}
			u := tc.dir.Unit()
			if u.X != float64(tc.wantDX) || u.Y != float64(tc.wantDY) {
				t.Fatalf("%v.Unit() = %+v", tc.dir, u)
			}
		})
	}
}

func TestHeadingReverse(t *testing.T) {
	pairs := [][2]Heading{
		{HeadingUp, HeadingDown},
		{HeadingLeft, HeadingRight},
		{HeadingNone, HeadingNone},
	}
	for _, p := range pairs {
		if p[0].Reverse() != p[1] || p[1].Reverse() != p[0] {
			t.Fatalf("reverse of %v/%v mismatched", p[0], p[1])
		}
	}
}

func TestFacingFor(t *testing.T) {
	tests := []struct {
		dir      Heading
		deg      float64
		mirrored bool
	}{
		{HeadingRight, 0, false},
		{HeadingUp, 90, false},
		{HeadingLeft, 180, true},
		{HeadingDown, 270, false},
		{HeadingNone, 0, false},
	}
	for _, tc := range tests {
		f := FacingFor(tc.dir)
		if f.Degrees != tc.deg || f.Mirrored != tc.mirrored {
			t.Fatalf("FacingFor(%v) = %+v, want %v/%v", tc.dir, f, tc.deg, tc.mirrored)
		}
	}
}

func TestPlayerReset(t *testing.T) {
	start := geom.Vec2{X: 12.5, Y: 16}
	p := NewPlayer(start, 6)
	p.Heading = HeadingLeft
	p.Pos.X = 4
	p.Reset(start)
	if p.Heading != HeadingNone || p.Pos != start {
		t.Fatalf("unexpected player after reset: %+v", p)
	}
}
