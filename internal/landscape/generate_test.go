package landscape

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Faultbox/landscape/internal/heightmap"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"flat", Flat, false},
		{"Random", Random, false},
		{" image ", FromImage, false},
		{"perlin", Perlin, false},
		{"lava", Flat, true},
		{"", Flat, true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownType) {
			t.Errorf("ParseType(%q) error = %v, want ErrUnknownType", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	for _, typ := range []Type{Flat, Random, FromImage, Perlin} {
		back, err := ParseType(typ.String())
		if err != nil || back != typ {
			t.Errorf("ParseType(%q) = %v, %v, want %v", typ.String(), back, err, typ)
		}
	}
	if got := Type(9).String(); got != "Type(9)" {
		t.Errorf("Type(9).String() = %q", got)
	}
}

func TestGenerateFlat(t *testing.T) {
	g := generateFlat(101, 101)
	if g.DimX() != 101 || g.DimY() != 101 || g.Scale() != 10 {
		t.Fatalf("grid = %dx%d scale %v, want 101x101 scale 10", g.DimX(), g.DimY(), g.Scale())
	}

	rows := g.Rows()
	if len(rows) != 101 {
		t.Fatalf("len(Rows()) = %d, want 101", len(rows))
	}
	for ix, row := range rows {
		if len(row) != 101 {
			t.Fatalf("len(Rows()[%d]) = %d, want 101", ix, len(row))
		}
		for iy, h := range row {
			if h != 0 {
				t.Fatalf("sample (%d,%d) = %v, want 0", ix, iy, h)
			}
		}
	}
}

func TestGenerateRandomNeighbours(t *testing.T) {
	// Always drawing the low end makes every sample center-3.
	g := generateRandom(2, 3, 3, constSource{})

	want := [][]float64{
		{0, -3, -6},
		// (1,0): mean(0, -3) - 3
		// (1,1): mean(0, -3, -6, -4.5) - 3
		// (1,2): last row, mean(-3, -6, -6.375) - 3
		{-4.5, -6.375, -8.125},
	}
	if got := g.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestGenerateRandomDeterministic(t *testing.T) {
	a := generateRandom(30, 20, 3, NewRandomSource(5489))
	b := generateRandom(30, 20, 3, NewRandomSource(5489))
	if !reflect.DeepEqual(a.Rows(), b.Rows()) {
		t.Error("equal seeds produced different grids")
	}

	c := generateRandom(30, 20, 3, NewRandomSource(1))
	if reflect.DeepEqual(a.Rows(), c.Rows()) {
		t.Error("different seeds produced equal grids")
	}
}

func TestGenerateRandomBounded(t *testing.T) {
	const dev = 3.0
	g := generateRandom(40, 40, dev, NewRandomSource(11))

	if g.At(0, 0) != 0 {
		t.Errorf("origin = %v, want 0", g.At(0, 0))
	}
	for ix := range 40 {
		for iy := range 40 {
			if ix == 0 && iy == 0 {
				continue
			}
			center := causalMean(g, ix, iy)
			if d := g.At(ix, iy) - center; d < -dev-1e-9 || d > dev+1e-9 {
				t.Errorf("sample (%d,%d) is %v from its neighbour mean", ix, iy, d)
			}
		}
	}
}

func TestGenerateRandomZeroDeviation(t *testing.T) {
	g := generateRandom(5, 5, 0, NewRandomSource(2))
	lo, hi := g.HeightRange()
	if lo != 0 || hi != 0 {
		t.Errorf("HeightRange() = %v..%v, want 0..0", lo, hi)
	}
}

func TestGenerateFromImage(t *testing.T) {
	src := stubSource{hm: &heightmap.Heightmap{
		Rows: 2,
		Cols: 3,
		Pix:  []byte{1, 2, 3, 4, 5, 255},
	}}

	g, err := generateFromImage(src, "terrain.png")
	if err != nil {
		t.Fatalf("generateFromImage() error = %v", err)
	}
	if g.DimX() != 2 || g.DimY() != 3 || g.Scale() != 2 {
		t.Fatalf("grid = %dx%d scale %v, want 2x3 scale 2", g.DimX(), g.DimY(), g.Scale())
	}
	want := [][]float64{{1, 2, 3}, {4, 5, 255}}
	if got := g.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestGenerateFromImageErrors(t *testing.T) {
	errLoad := errors.New("disk on fire")

	tests := []struct {
		name string
		src  stubSource
		want error
	}{
		{"load", stubSource{err: errLoad}, errLoad},
		{"single row", stubSource{hm: &heightmap.Heightmap{Rows: 1, Cols: 4, Pix: make([]byte, 4)}}, heightmap.ErrTooSmall},
		{"pixel count", stubSource{hm: &heightmap.Heightmap{Rows: 2, Cols: 2, Pix: make([]byte, 3)}}, errPixelCount},
	}

	for _, tt := range tests {
		g, err := generateFromImage(tt.src, "terrain.png")
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
		if g != nil {
			t.Errorf("%s: returned a grid alongside the error", tt.name)
		}
	}
}

func TestGeneratePerlin(t *testing.T) {
	p := PerlinParams{Alpha: 2, Beta: 2, Octaves: 3, Frequency: 0.05, Amplitude: 40}

	a := generatePerlin(25, 25, p, 42)
	b := generatePerlin(25, 25, p, 42)
	if !reflect.DeepEqual(a.Rows(), b.Rows()) {
		t.Error("equal seeds produced different grids")
	}
	if a.Scale() != 10 {
		t.Errorf("Scale() = %v, want 10", a.Scale())
	}
	if lo, hi := a.HeightRange(); lo == hi {
		t.Errorf("HeightRange() = %v..%v, want variation", lo, hi)
	}

	p.Amplitude = 0
	if lo, hi := generatePerlin(5, 5, p, 42).HeightRange(); lo != 0 || hi != 0 {
		t.Errorf("zero amplitude: HeightRange() = %v..%v, want 0..0", lo, hi)
	}
}
