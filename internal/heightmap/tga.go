package heightmap

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeTrueColor    = 2  // Uncompressed true-color
	TGATypeGray         = 3  // Uncompressed grayscale
	TGATypeTrueColorRLE = 10 // RLE compressed true-color
	TGATypeGrayRLE      = 11 // RLE compressed grayscale
)

// DecodeTGA decodes a TGA image into 8-bit grayscale.
// Supports uncompressed and RLE true-color (24/32 bit) and grayscale (8 bit) files.
func DecodeTGA(data []byte) (*image.Gray, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped TGA", ErrUnsupportedFormat)
	}

	var gray bool
	switch imageType {
	case TGATypeTrueColor, TGATypeTrueColorRLE:
		if bpp != 24 && bpp != 32 {
			return nil, fmt.Errorf("%w: TGA bit depth %d", ErrUnsupportedFormat, bpp)
		}
	case TGATypeGray, TGATypeGrayRLE:
		if bpp != 8 {
			return nil, fmt.Errorf("%w: grayscale TGA bit depth %d", ErrUnsupportedFormat, bpp)
		}
		gray = true
	default:
		return nil, fmt.Errorf("%w: TGA type %d", ErrUnsupportedFormat, imageType)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]
	bytesPerPixel := bpp / 8

	// luma converts one stored pixel (BGR(A) or single channel) to a sample.
	luma := func(p []byte) uint8 {
		if gray {
			return p[0]
		}
		return color.GrayModel.Convert(color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}).(color.Gray).Y
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	put := func(idx int, v uint8) {
		x, y := idx%width, idx/width
		if !topToBottom {
			y = height - 1 - y
		}
		img.Pix[y*img.Stride+x] = v
	}

	pixelCount := width * height
	if imageType == TGATypeTrueColor || imageType == TGATypeGray {
		if len(pixelData) < pixelCount*bytesPerPixel {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for i := 0; i < pixelCount; i++ {
			put(i, luma(pixelData[i*bytesPerPixel:]))
		}
		return img, nil
	}

	// RLE packets: high bit set repeats one pixel, otherwise count raw pixels follow.
	pixelIdx, dataIdx := 0, 0
	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			v := luma(pixelData[dataIdx:])
			dataIdx += bytesPerPixel
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				put(pixelIdx, v)
				pixelIdx++
			}
			continue
		}

		for i := 0; i < count && pixelIdx < pixelCount; i++ {
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			put(pixelIdx, luma(pixelData[dataIdx:]))
			dataIdx += bytesPerPixel
			pixelIdx++
		}
	}
	if pixelIdx < pixelCount {
		return nil, fmt.Errorf("TGA RLE data truncated: %d of %d pixels", pixelIdx, pixelCount)
	}

	return img, nil
}
