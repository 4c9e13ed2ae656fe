// Package heightmap loads images as single-channel height samples.
package heightmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
)

// Heightmap errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported heightmap format")
	ErrTooSmall          = errors.New("heightmap must be at least 2x2 pixels")
)

// Heightmap is a row-major grid of 8-bit samples. Row r, column c is Pix[r*Cols+c].
type Heightmap struct {
	Rows int
	Cols int
	Pix  []byte
}

// At returns the sample at (row, col). Out-of-range coordinates return 0.
func (h *Heightmap) At(row, col int) byte {
	if row < 0 || col < 0 || row >= h.Rows || col >= h.Cols {
		return 0
	}
	return h.Pix[row*h.Cols+col]
}

// Range returns the smallest and largest sample.
func (h *Heightmap) Range() (lo, hi byte) {
	if len(h.Pix) == 0 {
		return 0, 0
	}
	lo, hi = h.Pix[0], h.Pix[0]
	for _, p := range h.Pix {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}

// FromImage reduces any image to 8-bit luminance. Image rows become heightmap rows.
func FromImage(img image.Image) (*Heightmap, error) {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, cols, rows)
	}

	hm := &Heightmap{Rows: rows, Cols: cols, Pix: make([]byte, rows*cols)}

	// Fast path for already single-channel images
	if gray, ok := img.(*image.Gray); ok {
		for r := 0; r < rows; r++ {
			start := gray.PixOffset(bounds.Min.X, bounds.Min.Y+r)
			copy(hm.Pix[r*cols:(r+1)*cols], gray.Pix[start:start+cols])
		}
		return hm, nil
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+c, bounds.Min.Y+r)).(color.Gray)
			hm.Pix[r*cols+c] = g.Y
		}
	}
	return hm, nil
}

// Decode decodes image data into a heightmap. TGA has no magic number, so the
// file extension selects it; every other format is sniffed by image.Decode.
func Decode(data []byte, ext string) (*Heightmap, error) {
	var (
		img image.Image
		err error
	)
	if strings.EqualFold(ext, ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if errors.Is(err, image.ErrFormat) {
			err = fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
	}
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// FileSource loads heightmaps from the local filesystem.
type FileSource struct{}

// Load reads and decodes the image at path.
func (FileSource) Load(path string) (*Heightmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heightmap: %w", err)
	}
	hm, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap %s: %w", path, err)
	}
	return hm, nil
}
