package landscape

import (
	"github.com/Faultbox/landscape/pkg/math"
)

// InterpolateBilinear blends the four corners of an axis-aligned quad. The
// corner names give the x and y edge each corner sits on. A quad with zero
// width or height yields 0.
func InterpolateBilinear(x, y float64, x1y1, x1y2, x2y1, x2y2 math.Vec3) float64 {
	spanX := x2y1.X - x1y1.X
	if spanX == 0 {
		return 0
	}
	spanY := x1y2.Y - x1y1.Y
	if spanY == 0 {
		return 0
	}

	toX2 := x2y1.X - x
	toY2 := x1y2.Y - y
	fromX1 := x - x1y1.X
	fromY1 := y - x1y1.Y

	return (x1y1.Z*toX2*toY2 +
		x2y1.Z*fromX1*toY2 +
		x1y2.Z*toX2*fromY1 +
		x2y2.Z*fromX1*fromY1) / (spanX * spanY)
}

// bilinearAt samples the grid cell under (x, y) bilinearly.
func bilinearAt(g *SupportGrid, x, y float64) (float64, bool) {
	c, ok := locate(g, x, y)
	if !ok {
		return 0, false
	}
	return InterpolateBilinear(x, y,
		g.Point(c.ix, c.iy),
		g.Point(c.ix, c.iy+1),
		g.Point(c.ix+1, c.iy),
		g.Point(c.ix+1, c.iy+1),
	), true
}
