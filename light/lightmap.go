package light

import (
	"fmt"
	"image"
	"image/color"

	"github.com/unixpickle/essentials"
)

// Map is a row-major grid of lightness values in [0, 1].
type Map struct {
	Values []float32
	Width  int
	Height int
}

// At returns the lightness at column x, row y.
func (m *Map) At(x, y int) float32 {
	return m.Values[x+y*m.Width]
}

// FromRGB converts a packed RGB buffer of width*height pixels.
//
// Pixels are independent, so the conversion is spread over all CPUs;
// each worker writes only its own index and the output order matches
// the input.
func FromRGB(pix []uint8, width, height int) (*Map, error) {
	if len(pix) != 3*width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d pixels", ErrInvalidPixelLength, len(pix), width, height)
	}
	values := make([]float32, width*height)
	essentials.ConcurrentMap(0, height, func(y int) {
		row := y * width
		for x := 0; x < width; x++ {
			i := row + x
			// Length is already checked, so this cannot fail.
			values[i], _ = Lightness(pix[3*i : 3*i+3])
		}
	})
	return &Map{Values: values, Width: width, Height: height}, nil
}

// RGB flattens img into packed 8-bit RGB. Alpha is dropped without
// premultiplying, so transparent pixels keep their stored colour.
func RGB(img image.Image) []uint8 {
	b := img.Bounds()
	pix := make([]uint8, 0, 3*b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, c.R, c.G, c.B)
		}
	}
	return pix
}

// FromImage computes the lightness of every pixel of img.
func FromImage(img image.Image) (*Map, error) {
	b := img.Bounds()
	return FromRGB(RGB(img), b.Dx(), b.Dy())
}
