package render

import (
	"math"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/vmath"
)

// cellAspect is the height/width ratio of a terminal cell
const cellAspect = 2.0

// Viewport maps field coordinates (including the border) onto a block of terminal cells
type Viewport struct {
	OffX, OffY int     // Top-left cell of the field
	Cols, Rows int     // Cells used by the field
	Scale      float64 // Cells per world unit horizontally
}

// NewViewport fits the whole field, borders included, into cols x rows starting at (x, y)
// Aspect ratio is kept assuming cells twice as tall as wide
func NewViewport(f core.Field, x, y, cols, rows int) Viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	scale := math.Min(float64(cols)/f.TotalWidth(), cellAspect*float64(rows)/f.TotalHeight())
	usedCols := max(int(f.TotalWidth()*scale), 1)
	usedRows := max(int(f.TotalHeight()*scale/cellAspect), 1)
	return Viewport{
		OffX:  x + (cols-usedCols)/2,
		OffY:  y + (rows-usedRows)/2,
		Cols:  usedCols,
		Rows:  usedRows,
		Scale: scale,
	}
}

// ToCell returns the cell containing world point p
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	cx := int(math.Floor(p.X * v.Scale))
	cy := int(math.Floor(p.Y * v.Scale / cellAspect))
	cx = min(max(cx, 0), v.Cols-1)
	cy = min(max(cy, 0), v.Rows-1)
	return v.OffX + cx, v.OffY + cy
}

// ToWorld returns the world point at the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x-v.OffX) + 0.5) / v.Scale,
		Y: (float64(y-v.OffY) + 0.5) * cellAspect / v.Scale,
	}
}

// Contains reports whether screen cell (x, y) lies in the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= v.OffX && x < v.OffX+v.Cols && y >= v.OffY && y < v.OffY+v.Rows
}
