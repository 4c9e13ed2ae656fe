package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/landscape/internal/landscape"
)

// ErrUnsupportedFormat is returned for image formats other than png and bmp.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// HeightImage renders the grid as 8-bit gray, lowest sample black and
// highest white. Image row y is ix and column x is iy, matching how height
// images are read. A level grid is all black.
func HeightImage(g *landscape.SupportGrid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.DimY(), g.DimX()))
	lo, hi := g.HeightRange()
	span := hi - lo

	for ix := range g.DimX() {
		for iy := range g.DimY() {
			var v uint8
			if span > 0 {
				v = uint8(math.Round((g.At(ix, iy) - lo) / span * 255))
			}
			img.Pix[ix*img.Stride+iy] = v
		}
	}
	return img
}

// EncodeImage writes img in the named format ("png" or "bmp").
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteHeightImage writes the grid as an image, picking the format from
// the file extension.
func WriteHeightImage(path string, g *landscape.SupportGrid) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != "png" && format != "bmp" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := EncodeImage(file, HeightImage(g), format); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
