// Package export writes terrain meshes and height fields to files.
package export

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/landscape/internal/landscape"
)

// ErrEmptyMesh is returned when there is nothing to write.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// ToSDF converts terrain triangles to sdfx triangles, keeping corner order.
func ToSDF(tris []landscape.Triangle) []*sdf.Triangle3 {
	out := make([]*sdf.Triangle3, len(tris))
	for i, t := range tris {
		var st sdf.Triangle3
		for j, c := range t {
			st[j] = v3.Vec{X: c.X, Y: c.Y, Z: c.Z}
		}
		out[i] = &st
	}
	return out
}

// WriteSTL writes tris as a binary STL file.
func WriteSTL(path string, tris []landscape.Triangle) error {
	if len(tris) == 0 {
		return ErrEmptyMesh
	}
	if err := render.SaveSTL(path, ToSDF(tris)); err != nil {
		return fmt.Errorf("writing STL %s: %w", path, err)
	}
	return nil
}
