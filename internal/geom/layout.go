package geom

// Layout maps grid coordinates onto a centered, y-up world space. The
// default values reproduce the reference 410x450 canvas; a different canvas
// keeps the same affine form with rescaled constants.
type Layout struct {
	CellSize   float64
	HalfWidth  float64
	HalfHeight float64
	OffsetX    float64
	OffsetY    float64
	Rows       int
}

// DefaultLayout is the 26x29 maze drawn with 15 unit cells.
var DefaultLayout = Layout{
	CellSize:   15,
	HalfWidth:  205,
	HalfHeight: 225,
	OffsetX:    17.5,
	OffsetY:    5,
	Rows:       29,
}

// GridToWorld returns the world position of grid coordinate (col, row).
// The row axis is flipped: row 0 is the top of the screen.
func (l Layout) GridToWorld(col, row float64) Vec2 {
	return Vec2{
		X: col*l.CellSize - l.HalfWidth + l.OffsetX,
		Y: (float64(l.Rows)-1-row)*l.CellSize - l.HalfHeight + l.OffsetY,
	}
}

// WorldToGrid is the inverse of GridToWorld.
func (l Layout) WorldToGrid(pos Vec2) Vec2 {
	return Vec2{
		X: (pos.X - l.OffsetX + l.HalfWidth) / l.CellSize,
		Y: float64(l.Rows) - 1 - (pos.Y-l.OffsetY+l.HalfHeight)/l.CellSize,
	}
}

// ScreenSize is the size of the canvas the world is centered on.
func (l Layout) ScreenSize() (w, h int) {
	return int(2 * l.HalfWidth), int(2 * l.HalfHeight)
}

// WorldToScreen converts a world position to y-down canvas pixels with the
// origin in the top-left corner.
func (l Layout) WorldToScreen(pos Vec2) Vec2 {
	return Vec2{X: pos.X + l.HalfWidth, Y: l.HalfHeight - pos.Y}
}

// GridToScreen is WorldToScreen(GridToWorld(col, row)).
func (l Layout) GridToScreen(p Vec2) Vec2 {
	return l.WorldToScreen(l.GridToWorld(p.X, p.Y))
}

// GridSize converts a size in world units to grid units.
func (l Layout) GridSize(w, h float64) Vec2 {
	return Vec2{X: w / l.CellSize, Y: h / l.CellSize}
}
