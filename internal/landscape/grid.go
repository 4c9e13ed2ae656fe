// Package landscape generates terrain height fields, triangulates them and
// answers per-tick ground height and surface normal queries.
package landscape

import (
	"github.com/Faultbox/landscape/pkg/math"
)

// SupportGrid holds one height sample per grid point. Grid point (ix, iy)
// sits at world position (ix*scale, iy*scale). A grid is never modified after
// its generator returns it.
type SupportGrid struct {
	dimX, dimY int
	scale      float64
	samples    [][]float64 // [ix][iy]
}

func newSupportGrid(dimX, dimY int, scale float64) *SupportGrid {
	samples := make([][]float64, dimX)
	for ix := range samples {
		samples[ix] = make([]float64, dimY)
	}
	return &SupportGrid{dimX: dimX, dimY: dimY, scale: scale, samples: samples}
}

// DimX returns the number of support points along X.
func (g *SupportGrid) DimX() int { return g.dimX }

// DimY returns the number of support points along Y.
func (g *SupportGrid) DimY() int { return g.dimY }

// Scale returns the world distance between neighbouring support points.
func (g *SupportGrid) Scale() float64 { return g.scale }

// At returns the height of support point (ix, iy). Indices must be in range.
func (g *SupportGrid) At(ix, iy int) float64 {
	return g.samples[ix][iy]
}

// Point returns support point (ix, iy) in world space.
func (g *SupportGrid) Point(ix, iy int) math.Vec3 {
	return math.Vec3{
		X: float64(ix) * g.scale,
		Y: float64(iy) * g.scale,
		Z: g.samples[ix][iy],
	}
}

// Rows returns a copy of the samples, one row per ix.
func (g *SupportGrid) Rows() [][]float64 {
	rows := make([][]float64, g.dimX)
	for ix, row := range g.samples {
		rows[ix] = append([]float64(nil), row...)
	}
	return rows
}

// Extent returns the largest world coordinates covered by the grid.
func (g *SupportGrid) Extent() (maxX, maxY float64) {
	return float64(g.dimX-1) * g.scale, float64(g.dimY-1) * g.scale
}

// Contains reports whether (x, y) lies on the grid. NaN is never contained.
func (g *SupportGrid) Contains(x, y float64) bool {
	maxX, maxY := g.Extent()
	return x >= 0 && x <= maxX && y >= 0 && y <= maxY
}

// HeightRange returns the lowest and highest sample.
func (g *SupportGrid) HeightRange() (lo, hi float64) {
	lo, hi = g.samples[0][0], g.samples[0][0]
	for _, row := range g.samples {
		for _, h := range row {
			if h < lo {
				lo = h
			}
			if h > hi {
				hi = h
			}
		}
	}
	return lo, hi
}
