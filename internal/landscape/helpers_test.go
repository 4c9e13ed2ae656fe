package landscape

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/landscape/internal/heightmap"
)

// mockGrid creates a grid with heights from f.
func mockGrid(dimX, dimY int, scale float64, f func(ix, iy int) float64) *SupportGrid {
	g := newSupportGrid(dimX, dimY, scale)
	for ix := range dimX {
		for iy := range dimY {
			g.samples[ix][iy] = f(ix, iy)
		}
	}
	return g
}

// stubSource returns a fixed heightmap or error.
type stubSource struct {
	hm  *heightmap.Heightmap
	err error
}

func (s stubSource) Load(string) (*heightmap.Heightmap, error) {
	return s.hm, s.err
}

// constSource always returns lo or hi.
type constSource struct {
	high bool
}

func (s constSource) Uniform(lo, hi float64) float64 {
	if s.high {
		return hi
	}
	return lo
}

// newTestLandscape returns an engine with default options, modified by
// edit, that logs into the returned observer.
func newTestLandscape(t *testing.T, edit func(*Options)) (*Landscape, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = zap.New(core)
	if edit != nil {
		edit(&opts)
	}
	l, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, logs
}

func almostEqual(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}
