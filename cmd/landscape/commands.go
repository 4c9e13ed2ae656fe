package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/export"
	"github.com/Faultbox/landscape/internal/landscape"
	"github.com/Faultbox/landscape/pkg/math"
)

var errUsage = errors.New("usage")

func run(w io.Writer, cfg *config.Config, l *landscape.Landscape, rep landscape.Report, args []string) error {
	command, rest := args[0], args[1:]

	switch command {
	case "info":
		return cmdInfo(w, l, rep)
	case "query", "q":
		return cmdQuery(w, l, rest)
	case "profile":
		return cmdProfile(w, l, rest)
	case "export-stl":
		return cmdExportSTL(w, cfg, l, rest)
	case "export-image":
		return cmdExportImage(w, cfg, l, rest)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func cmdInfo(w io.Writer, l *landscape.Landscape, rep landscape.Report) error {
	g := l.Grid()
	maxX, maxY := g.Extent()
	lo, hi := g.HeightRange()
	b := l.Mesh().Bounds

	fmt.Fprintf(w, "Type:      %s\n", rep.Applied)
	if rep.Err != nil {
		fmt.Fprintf(w, "Requested: %s (%v)\n", rep.Requested, rep.Err)
	}
	fmt.Fprintf(w, "Grid:      %d x %d, scale %g\n", g.DimX(), g.DimY(), g.Scale())
	fmt.Fprintf(w, "Extent:    %g x %g\n", maxX, maxY)
	fmt.Fprintf(w, "Heights:   %.3f .. %.3f\n", lo, hi)
	fmt.Fprintf(w, "Triangles: %d\n", rep.Triangles)
	fmt.Fprintf(w, "Bounds:    %v .. %v\n", b.Min, b.Max)
	fmt.Fprintf(w, "Generated: %v\n", rep.Elapsed)
	return nil
}

func cmdQuery(w io.Writer, l *landscape.Landscape, args []string) error {
	v, err := parseFloats(args, 2)
	if err != nil {
		return fmt.Errorf("query <x> <y>: %w", err)
	}
	x, y := v[0], v[1]

	env := l.LocalEnvironment(x, y)
	if !env.InBounds {
		fmt.Fprintf(w, "(%g, %g) is outside the terrain\n", x, y)
		return nil
	}

	q := env.Orientation()
	fmt.Fprintf(w, "Height:      %.6f\n", env.Height)
	fmt.Fprintf(w, "Bilinear:    %.6f\n", l.HeightBilinear(x, y))
	fmt.Fprintf(w, "Normal:      %v\n", env.Normal)
	fmt.Fprintf(w, "Orientation: (%.6f %.6f %.6f %.6f)\n", q.X, q.Y, q.Z, q.W)
	if t, ok := l.FindTriangle(x, y); ok {
		fmt.Fprintf(w, "Triangle:    %v\n", t)
		fmt.Fprintf(w, "Incentre:    %v\n", t.IncircleCenter())
	}
	return nil
}

func cmdProfile(w io.Writer, l *landscape.Landscape, args []string) error {
	v, err := parseFloats(args, 5)
	if err != nil {
		return fmt.Errorf("profile <x0> <y0> <x1> <y1> <n>: %w", err)
	}
	n := int(v[4])
	if n < 2 {
		return fmt.Errorf("profile needs at least 2 points, got %d", n)
	}

	from := math.Vec2{X: v[0], Y: v[1]}
	step := math.Vec2{X: v[2], Y: v[3]}.Sub(from).Scale(1 / float64(n-1))
	for i := range n {
		p := from.Add(step.Scale(float64(i)))
		fmt.Fprintf(w, "%g\t%g\t%.6f\n", p.X, p.Y, l.Height(p.X, p.Y))
	}
	return nil
}

func cmdExportSTL(w io.Writer, cfg *config.Config, l *landscape.Landscape, args []string) error {
	fs := flag.NewFlagSet("export-stl", flag.ContinueOnError)
	radius := fs.Float64("radius", 0, "Only export triangles within this distance (0 = all)")
	cx := fs.Float64("cx", 0, "Centre X for -radius")
	cy := fs.Float64("cy", 0, "Centre Y for -radius")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tris := l.Triangles()
	if *radius > 0 {
		tris = l.TrianglesWithin(math.Vec2{X: *cx, Y: *cy}, *radius)
	}

	path := fs.Arg(0)
	if path == "" {
		var err error
		if path, err = export.NewExporter(cfg.Export.OutputDir, "terrain").ExportSTL(tris); err != nil {
			return err
		}
	} else if err := export.WriteSTL(path, tris); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %d triangles to %s\n", len(tris), path)
	return nil
}

func cmdExportImage(w io.Writer, cfg *config.Config, l *landscape.Landscape, args []string) error {
	g := l.Grid()

	var path string
	if len(args) > 0 {
		path = args[0]
		if err := export.WriteHeightImage(path, g); err != nil {
			return err
		}
	} else {
		var err error
		if path, err = export.NewExporter(cfg.Export.OutputDir, "heightmap").ExportHeightImage(g, cfg.Export.ImageFormat); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Wrote %dx%d height image to %s\n", g.DimY(), g.DimX(), path)
	return nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", errUsage, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
