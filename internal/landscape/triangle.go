package landscape

import (
	"fmt"

	"github.com/Faultbox/landscape/pkg/math"
)

// triangleEpsilon is the per-component tolerance used by Triangle.Equal.
const triangleEpsilon = 1e-8

// Triangle is three ordered corners in world space.
type Triangle [3]math.Vec3

// Corner returns corner i (0, 1 or 2).
func (t Triangle) Corner(i int) math.Vec3 {
	return t[i]
}

// Normal returns the unit normal of the corner winding (c1-c0) x (c2-c0).
// A degenerate triangle yields the zero vector.
func (t Triangle) Normal() math.Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalize()
}

// Barycentric converts (x, y) to barycentric weights against the triangle's
// projection onto the ground plane. ok is false if that projection is
// degenerate, in which case the weights are zero.
func (t Triangle) Barycentric(x, y float64) (a, b, c float64, ok bool) {
	det := (t[1].Y-t[2].Y)*(t[0].X-t[2].X) + (t[2].X-t[1].X)*(t[0].Y-t[2].Y)
	if det == 0 {
		return 0, 0, 0, false
	}

	a = ((t[1].Y-t[2].Y)*(x-t[2].X) + (t[2].X-t[1].X)*(y-t[2].Y)) / det
	b = ((t[2].Y-t[0].Y)*(x-t[2].X) + (t[0].X-t[2].X)*(y-t[2].Y)) / det
	c = 1 - a - b
	return a, b, c, true
}

// InterpolateHeight returns the height of the triangle's plane above (x, y).
// Points outside the triangle extrapolate the same plane.
//
// For a degenerate triangle ok is false and the result is the mean of the
// corner heights.
func (t Triangle) InterpolateHeight(x, y float64) (float64, bool) {
	a, b, c, ok := t.Barycentric(x, y)
	if !ok {
		return (t[0].Z + t[1].Z + t[2].Z) / 3, false
	}
	return a*t[0].Z + b*t[1].Z + c*t[2].Z, true
}

// BarycentricToCartesian returns a*c0 + b*c1 + c*c2.
func (t Triangle) BarycentricToCartesian(a, b, c float64) math.Vec3 {
	return t[0].Scale(a).Add(t[1].Scale(b)).Add(t[2].Scale(c))
}

// IncircleCenter returns the incentre, where debug views anchor the normal.
func (t Triangle) IncircleCenter() math.Vec3 {
	a := t[2].Distance(t[1])
	b := t[0].Distance(t[2])
	c := t[1].Distance(t[0])
	p := a + b + c
	if p == 0 {
		return t[0]
	}
	return t.BarycentricToCartesian(a/p, b/p, c/p)
}

// Equal compares corners pairwise within a small tolerance.
func (t Triangle) Equal(other Triangle) bool {
	for i := range t {
		if !t[i].ApproxEqual(other[i], triangleEpsilon) {
			return false
		}
	}
	return true
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t[0], t[1], t[2])
}
