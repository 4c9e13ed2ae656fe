package landscape

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/heightmap"
	"github.com/Faultbox/landscape/internal/logger"
	"github.com/Faultbox/landscape/pkg/math"
)

// Options configures a Landscape.
type Options struct {
	DimX, DimY   int     // Grid size for the flat, random and perlin generators
	MaxDeviation float64 // Random generator spread
	Seed         int64
	Perlin       PerlinParams

	HeightmapPath string
	Heightmap     HeightmapSource // Defaults to heightmap.FileSource

	// NewRandom returns the source for one Random generation. Defaults to
	// NewRandomSource(Seed), so equal seeds give equal terrain.
	NewRandom func() RandomSource

	QueryBudget time.Duration // Soft limit per height query, 0 disables
	DrawBudget  time.Duration // Soft limit for TrianglesWithin, 0 disables

	Logger *zap.Logger
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig converts the terrain and query sections of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	t := cfg.Terrain
	return Options{
		DimX:         t.DimX,
		DimY:         t.DimY,
		MaxDeviation: t.MaxDeviation,
		Seed:         t.Seed,
		Perlin: PerlinParams{
			Alpha:     t.Perlin.Alpha,
			Beta:      t.Perlin.Beta,
			Octaves:   t.Perlin.Octaves,
			Frequency: t.Perlin.Frequency,
			Amplitude: t.Perlin.Amplitude,
		},
		HeightmapPath: t.Heightmap,
		QueryBudget:   cfg.Query.Budget,
		DrawBudget:    cfg.Query.DrawBudget,
	}
}

// Environment is the ground under a query point.
type Environment struct {
	Height   float64
	Normal   math.Vec3 // Unit surface normal, Up when out of bounds
	InBounds bool
}

// Orientation returns the rotation that takes world up onto the surface
// normal, used to bank a vehicle on slopes.
func (e Environment) Orientation() math.Quat {
	return math.QuatFromTwoVectors(math.Up, e.Normal)
}

// Report describes one Generate call. Err holds a failure that was recovered
// by falling back to flat terrain.
type Report struct {
	Requested Type
	Applied   Type
	DimX      int
	DimY      int
	Scale     float64
	Triangles int
	Elapsed   time.Duration
	Err       error
}

// surface is one generated grid with its mesh. Only current changes after
// publication.
type surface struct {
	kind    Type
	grid    *SupportGrid
	mesh    *Mesh
	current atomic.Int64 // mesh index of the last located triangle, -1 for none
}

func newSurface(kind Type, g *SupportGrid) *surface {
	s := &surface{kind: kind, grid: g, mesh: Triangulate(g)}
	s.current.Store(-1)
	return s
}

// Landscape owns the current terrain and answers queries against it. Queries
// may run concurrently with each other and with Generate; each query sees
// one complete surface.
type Landscape struct {
	opts Options
	log  *zap.Logger
	now  func() time.Time
	surf atomic.Pointer[surface]
}

// New validates opts and returns an engine with flat terrain.
func New(opts Options) (*Landscape, error) {
	if opts.DimX < 2 || opts.DimY < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", config.ErrInvalidDimensions, opts.DimX, opts.DimY)
	}
	if opts.MaxDeviation < 0 {
		return nil, fmt.Errorf("%w: got %v", config.ErrInvalidDeviation, opts.MaxDeviation)
	}
	if opts.Heightmap == nil {
		opts.Heightmap = heightmap.FileSource{}
	}
	if opts.NewRandom == nil {
		seed := opts.Seed
		opts.NewRandom = func() RandomSource { return NewRandomSource(seed) }
	}
	if opts.Logger == nil {
		opts.Logger = logger.Named("landscape")
	}

	l := &Landscape{opts: opts, log: opts.Logger, now: time.Now}
	l.surf.Store(newSurface(Flat, generateFlat(opts.DimX, opts.DimY)))
	return l, nil
}

// Generate builds a new grid and mesh and swaps them in. It never fails:
// an unknown type or an unusable height image falls back to flat terrain
// and the cause is returned in Report.Err.
func (l *Landscape) Generate(kind Type) Report {
	start := l.now()
	rep := Report{Requested: kind, Applied: kind}

	var g *SupportGrid
	switch kind {
	case Flat:
		g = generateFlat(l.opts.DimX, l.opts.DimY)
	case Random:
		g = generateRandom(l.opts.DimX, l.opts.DimY, l.opts.MaxDeviation, l.opts.NewRandom())
	case FromImage:
		var err error
		g, err = generateFromImage(l.opts.Heightmap, l.opts.HeightmapPath)
		if err != nil {
			rep.Err = fmt.Errorf("generate from image: %w", err)
		}
	case Perlin:
		g = generatePerlin(l.opts.DimX, l.opts.DimY, l.opts.Perlin, l.opts.Seed)
	default:
		rep.Err = fmt.Errorf("%w: %v", ErrUnknownType, kind)
	}

	if rep.Err != nil {
		l.log.Error("terrain generation failed, using flat terrain",
			zap.Stringer("requested", kind),
			zap.Error(rep.Err))
		rep.Applied = Flat
		g = generateFlat(l.opts.DimX, l.opts.DimY)
	}

	s := newSurface(rep.Applied, g)
	l.surf.Store(s)

	rep.DimX, rep.DimY, rep.Scale = g.dimX, g.dimY, g.scale
	rep.Triangles = s.mesh.Len()
	rep.Elapsed = l.now().Sub(start)

	l.log.Info("terrain generated",
		zap.Stringer("type", rep.Applied),
		zap.Int("dimX", rep.DimX),
		zap.Int("dimY", rep.DimY),
		zap.Int("triangles", rep.Triangles),
		zap.Duration("elapsed", rep.Elapsed))
	return rep
}

// Type returns the generator behind the current surface.
func (l *Landscape) Type() Type {
	return l.surf.Load().kind
}

// Grid returns the current support grid.
func (l *Landscape) Grid() *SupportGrid {
	return l.surf.Load().grid
}

// Mesh returns the current mesh. Callers must not modify it.
func (l *Landscape) Mesh() *Mesh {
	return l.surf.Load().mesh
}

// Triangles returns a copy of the current mesh in draw order.
func (l *Landscape) Triangles() []Triangle {
	return append([]Triangle(nil), l.surf.Load().mesh.Triangles...)
}

// LocalEnvironment returns the ground height and normal at (x, y) and marks
// the triangle under it as current. Outside the grid it returns height 0,
// normal Up and InBounds false.
func (l *Landscape) LocalEnvironment(x, y float64) Environment {
	start := l.now()
	defer l.checkBudget("local environment", start, l.opts.QueryBudget)

	s := l.surf.Load()
	c, ok := locate(s.grid, x, y)
	if !ok {
		return Environment{Normal: math.Up}
	}

	i := s.mesh.Index(c.ix, c.iy, c.upper)
	s.current.Store(int64(i))
	return Environment{
		Height:   l.interpolate(s.mesh.Triangles[i], x, y),
		Normal:   s.mesh.Normals[i],
		InBounds: true,
	}
}

// Height returns the ground height at (x, y), or 0 outside the grid.
func (l *Landscape) Height(x, y float64) float64 {
	start := l.now()
	defer l.checkBudget("height", start, l.opts.QueryBudget)

	s := l.surf.Load()
	c, ok := locate(s.grid, x, y)
	if !ok {
		return 0
	}
	return l.interpolate(s.mesh.Triangles[s.mesh.Index(c.ix, c.iy, c.upper)], x, y)
}

// HeightBilinear blends the four support points of the cell under (x, y).
// It does not match the rendered mesh; use Height for that.
func (l *Landscape) HeightBilinear(x, y float64) float64 {
	h, _ := bilinearAt(l.surf.Load().grid, x, y)
	return h
}

// FindTriangle returns the mesh triangle under (x, y).
func (l *Landscape) FindTriangle(x, y float64) (Triangle, bool) {
	s := l.surf.Load()
	c, ok := locate(s.grid, x, y)
	if !ok {
		return Triangle{}, false
	}
	return s.mesh.Triangles[s.mesh.Index(c.ix, c.iy, c.upper)], true
}

// IsCurrentTriangle reports whether t is the triangle found by the last
// LocalEnvironment call on the current surface.
func (l *Landscape) IsCurrentTriangle(t Triangle) bool {
	s := l.surf.Load()
	i := s.current.Load()
	if i < 0 {
		return false
	}
	return s.mesh.Triangles[i].Equal(t)
}

// TrianglesWithin returns the triangles whose first corner is within radius
// of center, in mesh order.
func (l *Landscape) TrianglesWithin(center math.Vec2, radius float64) []Triangle {
	start := l.now()
	defer l.checkBudget("triangles within", start, l.opts.DrawBudget)

	return l.surf.Load().mesh.Within(center, radius)
}

func (l *Landscape) interpolate(t Triangle, x, y float64) float64 {
	h, ok := t.InterpolateHeight(x, y)
	if !ok {
		l.log.Warn("invalid triangle",
			zap.Stringer("triangle", t),
			zap.Float64("x", x),
			zap.Float64("y", y))
	}
	return h
}

func (l *Landscape) checkBudget(op string, start time.Time, budget time.Duration) {
	if budget <= 0 {
		return
	}
	if elapsed := l.now().Sub(start); elapsed > budget {
		l.log.Warn("terrain query over budget",
			zap.String("op", op),
			zap.Duration("elapsed", elapsed),
			zap.Duration("budget", budget))
	}
}
