package landscape

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/landscape/internal/heightmap"
)

// Type selects a height field generator.
type Type int

const (
	Flat Type = iota
	Random
	FromImage
	Perlin
)

// Grid spacing per generator, in world units.
const (
	flatScale   = 10.0
	randomScale = 10.0
	imageScale  = 2.0
	perlinScale = 10.0
)

var typeNames = [...]string{
	Flat:      "flat",
	Random:    "random",
	FromImage: "image",
	Perlin:    "perlin",
}

var (
	// ErrUnknownType is reported when Generate is asked for a generator it
	// does not have.
	ErrUnknownType = errors.New("unknown terrain type")

	errPixelCount = errors.New("heightmap pixel count does not match its size")
)

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType maps a config name such as "random" to its Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return Flat, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// RandomSource draws the perturbations of the Random generator.
type RandomSource interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
}

type randSource struct {
	r *rand.Rand
}

// NewRandomSource returns a deterministic RandomSource for seed.
func NewRandomSource(seed int64) RandomSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// HeightmapSource loads the single-channel image behind FromImage.
type HeightmapSource interface {
	Load(path string) (*heightmap.Heightmap, error)
}

// PerlinParams configures the Perlin generator.
type PerlinParams struct {
	Alpha     float64
	Beta      float64
	Octaves   int32
	Frequency float64
	Amplitude float64
}

func generateFlat(dimX, dimY int) *SupportGrid {
	return newSupportGrid(dimX, dimY, flatScale)
}

// generateRandom fills the grid column by column. Every sample is drawn
// within maxDev of the mean of its already generated neighbours, so column
// ix only reads column ix-1 and the samples below it in column ix.
func generateRandom(dimX, dimY int, maxDev float64, rnd RandomSource) *SupportGrid {
	g := newSupportGrid(dimX, dimY, randomScale)
	for ix := range dimX {
		for iy := range dimY {
			if ix == 0 && iy == 0 {
				continue
			}
			center := causalMean(g, ix, iy)
			g.samples[ix][iy] = rnd.Uniform(center-maxDev, center+maxDev)
		}
	}
	return g
}

// causalMean averages the generated neighbours of (ix, iy): the three
// samples of the previous column around iy and the sample below in the same
// column. Neighbours past the grid edge are left out.
func causalMean(g *SupportGrid, ix, iy int) float64 {
	switch {
	case ix == 0:
		return g.samples[0][iy-1]
	case iy == 0:
		prev := g.samples[ix-1]
		return (prev[0] + prev[1]) / 2
	}

	prev := g.samples[ix-1]
	sum := prev[iy-1] + prev[iy] + g.samples[ix][iy-1]
	n := 3.0
	if iy+1 < g.dimY {
		sum += prev[iy+1]
		n++
	}
	return sum / n
}

// generateFromImage uses image row r as ix and column c as iy.
func generateFromImage(src HeightmapSource, path string) (*SupportGrid, error) {
	hm, err := src.Load(path)
	if err != nil {
		return nil, err
	}
	if hm.Rows < 2 || hm.Cols < 2 {
		return nil, fmt.Errorf("%s: %dx%d: %w", path, hm.Cols, hm.Rows, heightmap.ErrTooSmall)
	}
	if len(hm.Pix) != hm.Rows*hm.Cols {
		return nil, fmt.Errorf("%s: %w", path, errPixelCount)
	}

	g := newSupportGrid(hm.Rows, hm.Cols, imageScale)
	for r := range hm.Rows {
		row := hm.Pix[r*hm.Cols : (r+1)*hm.Cols]
		for c, v := range row {
			g.samples[r][c] = float64(v)
		}
	}
	return g, nil
}

func generatePerlin(dimX, dimY int, p PerlinParams, seed int64) *SupportGrid {
	noise := perlin.NewPerlin(p.Alpha, p.Beta, p.Octaves, seed)
	g := newSupportGrid(dimX, dimY, perlinScale)
	for ix := range dimX {
		for iy := range dimY {
			g.samples[ix][iy] = p.Amplitude * noise.Noise2D(float64(ix)*p.Frequency, float64(iy)*p.Frequency)
		}
	}
	return g
}
