package landscape

import (
	gomath "math"
	"testing"
)

func TestLocateFlatGrid(t *testing.T) {
	g := generateFlat(101, 101)

	tests := []struct {
		name string
		x, y float64
		want Triangle
	}{
		{"upper", 11, 12, Triangle{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20}}},
		{"lower", 12, 11, Triangle{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}},
		{"lower first row", 15, 3, Triangle{{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}}},
		{"upper first row", 15, 8, Triangle{{X: 10, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10}}},
		{"far corner", 1000, 1000, Triangle{{X: 990, Y: 990}, {X: 1000, Y: 1000}, {X: 990, Y: 1000}}},
		{"origin", 0, 0, Triangle{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(g, tt.x, tt.y)
			if !ok {
				t.Fatalf("Locate(%v, %v) not found", tt.x, tt.y)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Locate(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLocateOutOfRange(t *testing.T) {
	g := generateFlat(101, 101)

	points := [][2]float64{
		{-1, 5},
		{5, -0.1},
		{1000.1, 5},
		{5, 1000.1},
		{gomath.NaN(), 5},
		{5, gomath.Inf(1)},
	}

	for _, p := range points {
		if tr, ok := Locate(g, p[0], p[1]); ok {
			t.Errorf("Locate(%v, %v) = %v, want not found", p[0], p[1], tr)
		}
	}
}

func TestUpperHalf(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   bool
	}{
		{0, 0, false},
		{1, 0, false},
		{0, 1, true},
		{1, 1, true},
		{1, 2, true},
		{2, 1, false},
		{9.99, 10, true},
		{10, 9.99, false},
	}

	for _, tt := range tests {
		if got := upperHalf(tt.dx, tt.dy); got != tt.want {
			t.Errorf("upperHalf(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

// The located triangle must contain the query point.
func TestLocateContainsPoint(t *testing.T) {
	g := generateRandom(11, 11, 3, NewRandomSource(7))

	for x := 0.0; x <= 100; x += 0.7 {
		for y := 0.0; y <= 100; y += 1.3 {
			tr, ok := Locate(g, x, y)
			if !ok {
				t.Fatalf("Locate(%v, %v) not found", x, y)
			}
			a, b, c, _ := tr.Barycentric(x, y)
			if a < -1e-9 || b < -1e-9 || c < -1e-9 {
				t.Fatalf("Locate(%v, %v) = %v, weights (%v %v %v) put the point outside", x, y, tr, a, b, c)
			}
		}
	}
}

func TestHeightContinuity(t *testing.T) {
	g := generateRandom(11, 11, 3, NewRandomSource(3))

	// Both triangles of a cell agree along the shared diagonal.
	for ix := range 10 {
		for iy := range 10 {
			upper := cellTriangle(g, ix, iy, true)
			lower := cellTriangle(g, ix, iy, false)
			for _, f := range []float64{0.1, 0.5, 0.9} {
				x := (float64(ix) + f) * g.Scale()
				y := (float64(iy) + f) * g.Scale()
				ha, _ := upper.InterpolateHeight(x, y)
				hb, _ := lower.InterpolateHeight(x, y)
				if !almostEqual(ha, hb, 1e-9) {
					t.Errorf("cell (%d,%d) diagonal at %v: %v vs %v", ix, iy, f, ha, hb)
				}
			}
		}
	}

	// Heights just either side of a cell edge agree.
	height := func(x, y float64) float64 {
		tr, _ := Locate(g, x, y)
		h, _ := tr.InterpolateHeight(x, y)
		return h
	}
	const eps = 1e-7
	for edge := 10.0; edge < 100; edge += 10 {
		for _, other := range []float64{3, 47, 81} {
			if a, b := height(edge-eps, other), height(edge+eps, other); !almostEqual(a, b, 1e-5) {
				t.Errorf("x edge %v: %v vs %v", edge, a, b)
			}
			if a, b := height(other, edge-eps), height(other, edge+eps); !almostEqual(a, b, 1e-5) {
				t.Errorf("y edge %v: %v vs %v", edge, a, b)
			}
		}
	}
}
