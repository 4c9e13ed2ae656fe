package landscape

import (
	"github.com/Faultbox/landscape/pkg/math"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is the triangulated surface of a SupportGrid. Triangles and Normals
// are parallel slices and must not be modified.
type Mesh struct {
	Triangles []Triangle
	Normals   []math.Vec3
	Bounds    Bounds

	cellsY int
}

// Triangulate emits two triangles per grid cell, cells in (ix, iy) order:
// A = (ix,iy) (ix+1,iy+1) (ix,iy+1) then B = (ix,iy) (ix+1,iy) (ix+1,iy+1).
// Both wind counter-clockwise seen from above.
func Triangulate(g *SupportGrid) *Mesh {
	cellsX, cellsY := g.dimX-1, g.dimY-1
	m := &Mesh{
		Triangles: make([]Triangle, 0, 2*cellsX*cellsY),
		cellsY:    cellsY,
		Bounds: Bounds{
			Min: math.Vec3{X: 1e300, Y: 1e300, Z: 1e300},
			Max: math.Vec3{X: -1e300, Y: -1e300, Z: -1e300},
		},
	}

	for ix := range cellsX {
		for iy := range cellsY {
			m.Triangles = append(m.Triangles,
				cellTriangle(g, ix, iy, true),
				cellTriangle(g, ix, iy, false),
			)
		}
	}

	m.Normals = make([]math.Vec3, len(m.Triangles))
	for i, t := range m.Triangles {
		m.Normals[i] = t.Normal()
		for _, c := range t {
			updateBounds(&m.Bounds, c)
		}
	}
	if len(m.Triangles) == 0 {
		m.Bounds = Bounds{}
	}
	return m
}

// cellTriangle builds triangle A (upper) or B of cell (ix, iy).
func cellTriangle(g *SupportGrid, ix, iy int, upper bool) Triangle {
	if upper {
		return Triangle{g.Point(ix, iy), g.Point(ix+1, iy+1), g.Point(ix, iy+1)}
	}
	return Triangle{g.Point(ix, iy), g.Point(ix+1, iy), g.Point(ix+1, iy+1)}
}

// Len returns the triangle count.
func (m *Mesh) Len() int {
	return len(m.Triangles)
}

// Index returns the mesh position of triangle A or B of cell (ix, iy).
func (m *Mesh) Index(ix, iy int, upper bool) int {
	i := 2 * (ix*m.cellsY + iy)
	if !upper {
		i++
	}
	return i
}

// Within returns the triangles whose first corner lies within radius of
// center on the ground plane.
func (m *Mesh) Within(center math.Vec2, radius float64) []Triangle {
	var out []Triangle
	r2 := radius * radius
	for _, t := range m.Triangles {
		if t[0].XY().Sub(center).LengthSq() <= r2 {
			out = append(out, t)
		}
	}
	return out
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}
