package landscape

import (
	gomath "math"
)

// cell identifies one triangle of the grid.
type cell struct {
	ix, iy int
	upper  bool
}

// locate maps a world point to the grid triangle under it. Points outside
// the grid, NaN included, are not found. Points on the far edges belong to
// the last cell.
func locate(g *SupportGrid, x, y float64) (cell, bool) {
	if !g.Contains(x, y) {
		return cell{}, false
	}

	ix := min(int(gomath.Floor(x/g.scale)), g.dimX-2)
	iy := min(int(gomath.Floor(y/g.scale)), g.dimY-2)

	dx := x - float64(ix)*g.scale
	dy := y - float64(iy)*g.scale
	return cell{ix: ix, iy: iy, upper: upperHalf(dx, dy)}, true
}

// upperHalf decides between the two triangles of a cell from the offset
// inside it. The polar angle is measured from the +y axis towards +x; the
// cell diagonal sits at 45 degrees and belongs to triangle A.
func upperHalf(dx, dy float64) bool {
	var rho float64
	if dy == 0 {
		if dx > 0 {
			rho = 90
		} else {
			rho = 270
		}
	} else {
		rho = gomath.Atan(dx/dy) * 180 / gomath.Pi
	}
	if rho < 0 {
		rho += 360
	}
	return rho <= 45
}

// Locate returns the triangle of g under (x, y).
func Locate(g *SupportGrid, x, y float64) (Triangle, bool) {
	c, ok := locate(g, x, y)
	if !ok {
		return Triangle{}, false
	}
	return cellTriangle(g, c.ix, c.iy, c.upper), true
}
